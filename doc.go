// Package graphpq is a weighted-graph toolkit built around an indexed
// priority queue with in-place priority updates.
//
// Under the hood, everything is organized in subpackages:
//
//	core/         — Graph[V] with directed or undirected edges and a running weight total
//	pqueue/       — Queue[T, P]: binary heap + item index, O(log n) Update (decrease/increase-key)
//	prim_kruskal/ — minimum spanning tree / forest: Prim (on pqueue) and Kruskal (union-find)
//	dijkstra/     — single-source shortest paths with decrease-key on pqueue
//	bfs/          — breadth-first search and connected components
//	builder/      — deterministic graph fixtures (path, cycle, complete, grid, random)
//	cmd/prim      — command-line front end over edge-list files
//
// Quick start:
//
//	g := core.NewGraph[string]()
//	_ = g.AddEdgeForced("Roma", "Dubai", 2)
//	_ = g.AddEdgeForced("Roma", "Londra", 6)
//	mst, err := prim_kruskal.Prim(g, "Roma", pqueue.Min[float64])
//
// Libraries never log and never lock; a Graph or Queue belongs to one goroutine.
package graphpq
