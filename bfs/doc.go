// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order, plus connected
// component discovery.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex.
//     Edge weights are ignored. The Result holds:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Components partitions an undirected graph into its connected components.
//   - Options: context cancellation, MaxDepth, neighbour filtering and an
//     OnVisit hook that may abort the walk.
//
// Determinism
//
//	core.Graph returns vertices and neighbours in insertion order, so visit
//	order and component order are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//		bfs.WithMaxDepth[string](3),
//		bfs.WithOnVisit(func(v string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
