// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order.
package core

import "fmt"

// AddVertex inserts v with an empty adjacency list if it is missing.
// Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	if _, exists := g.adjacency[v]; exists {
		return
	}
	g.adjacency[v] = make([]V, 0)
	g.order = append(g.order, v)
}

// HasVertex reports whether v is a vertex of g.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]
	return ok
}

// RemoveVertex deletes v and every edge that has v as source or destination.
//
// Errors:
//   - ErrVertexNotFound: v is not a vertex of g.
//
// Complexity: O(V + E).
func (g *Graph[V]) RemoveVertex(v V) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	// Outgoing cells of v.
	for _, dest := range g.adjacency[v] {
		g.weights.Remove(v, dest)
	}
	delete(g.adjacency, v)

	// Incoming references from every other vertex (both orientations).
	for src, dests := range g.adjacency {
		if idx := indexOf(dests, v); idx >= 0 {
			g.adjacency[src] = deleteAt(dests, idx)
			g.weights.Remove(src, v)
		}
	}

	g.order = deleteAt(g.order, indexOf(g.order, v))

	return nil
}

// Vertices returns a snapshot of all vertex labels in insertion order.
// The slice is owned by the caller.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.order) }

// IsEmpty reports whether g has no vertices.
func (g *Graph[V]) IsEmpty() bool { return len(g.order) == 0 }
