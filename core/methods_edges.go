// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Undirected graphs store each edge twice (src→dest and dest→src); every
// method here adds or removes both entries together.
package core

import "fmt"

// AddEdge connects src to dest with weight w. Both endpoints must exist.
// If the edge already exists the call is a no-op: weights are never
// overwritten. Undirected graphs also insert dest→src with the same weight.
//
// Errors:
//   - ErrVertexNotFound: src or dest is missing.
//   - ErrLoopNotAllowed: src == dest on an undirected graph.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(src, dest V, w float64) error {
	if err := g.requireEndpoints(src, dest); err != nil {
		return err
	}

	return g.link(src, dest, w)
}

// AddEdgeForced is AddEdge that first creates any missing endpoint.
// It never fails because of an unseen vertex.
//
// Errors:
//   - ErrLoopNotAllowed: src == dest on an undirected graph.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdgeForced(src, dest V, w float64) error {
	if !g.directed && src == dest {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, src)
	}
	g.AddVertex(src)
	g.AddVertex(dest)

	return g.link(src, dest, w)
}

// link inserts the edge once both endpoints are known to exist.
func (g *Graph[V]) link(src, dest V, w float64) error {
	if !g.directed && src == dest {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, src)
	}
	if _, exists := g.weights.Get(src, dest); exists {
		return nil
	}

	g.adjacency[src] = append(g.adjacency[src], dest)
	g.weights.Set(src, dest, w)
	if !g.directed {
		g.adjacency[dest] = append(g.adjacency[dest], src)
		g.weights.Set(dest, src, w)
	}

	return nil
}

// RemoveEdge deletes the edge src→dest, and dest→src on undirected graphs.
//
// Errors:
//   - ErrVertexNotFound: src or dest is missing.
//   - ErrEdgeNotFound: the edge does not exist.
//
// Complexity: O(deg(src) + deg(dest)).
func (g *Graph[V]) RemoveEdge(src, dest V) error {
	if err := g.requireEndpoints(src, dest); err != nil {
		return err
	}
	if _, exists := g.weights.Get(src, dest); !exists {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, src, dest)
	}

	g.adjacency[src] = deleteAt(g.adjacency[src], indexOf(g.adjacency[src], dest))
	g.weights.Remove(src, dest)
	if !g.directed {
		g.adjacency[dest] = deleteAt(g.adjacency[dest], indexOf(g.adjacency[dest], src))
		g.weights.Remove(dest, src)
	}

	return nil
}

// HasEdge reports whether the edge src→dest exists.
// On undirected graphs HasEdge(a, b) == HasEdge(b, a).
//
// Errors:
//   - ErrVertexNotFound: src or dest is missing.
//
// Complexity: O(1).
func (g *Graph[V]) HasEdge(src, dest V) (bool, error) {
	if err := g.requireEndpoints(src, dest); err != nil {
		return false, err
	}
	_, ok := g.weights.Get(src, dest)

	return ok, nil
}

// EdgeWeight returns the weight of src→dest.
//
// Errors:
//   - ErrVertexNotFound: src or dest is missing.
//   - ErrEdgeNotFound: the edge does not exist.
//
// Complexity: O(1).
func (g *Graph[V]) EdgeWeight(src, dest V) (float64, error) {
	if err := g.requireEndpoints(src, dest); err != nil {
		return 0, err
	}
	w, ok := g.weights.Get(src, dest)
	if !ok {
		return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, src, dest)
	}

	return w, nil
}

// Edges returns every logical edge once, ordered by source insertion order
// and then by adjacency order. Undirected edges are reported in the
// orientation of the earlier-inserted endpoint.
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.EdgeCount())
	done := make(map[V]struct{}, len(g.order))
	for _, src := range g.order {
		for _, dest := range g.adjacency[src] {
			if _, seen := done[dest]; !g.directed && seen {
				continue // mirror of an edge already reported
			}
			w, _ := g.weights.Get(src, dest)
			out = append(out, Edge[V]{From: src, To: dest, Weight: w})
		}
		done[src] = struct{}{}
	}

	return out
}

// EdgeCount returns the number of logical edges.
// Undirected graphs report half of the stored entries.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	if g.directed {
		return g.weights.Len()
	}

	return g.weights.Len() / 2
}

// Weight returns the sum of all logical edge weights.
// Undirected graphs report half of the stored total.
// Complexity: O(1).
func (g *Graph[V]) Weight() float64 {
	if g.directed {
		return g.weights.Total()
	}

	return g.weights.Total() / 2
}
