// File: methods_adjacent.go
// Role: Adjacency queries and the slice helpers that keep adjacency lists in order.
package core

import "fmt"

// Neighbors returns a snapshot of the destinations reachable from v by one
// edge, in the order the edges were added. On undirected graphs this is
// every vertex sharing an edge with v.
//
// Errors:
//   - ErrVertexNotFound: v is not a vertex of g.
//
// Complexity: O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	dests, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, len(dests))
	copy(out, dests)

	return out, nil
}

// Degree returns the number of adjacency entries of v (out-degree on directed graphs).
//
// Errors:
//   - ErrVertexNotFound: v is not a vertex of g.
func (g *Graph[V]) Degree(v V) (int, error) {
	dests, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}

	return len(dests), nil
}

// requireEndpoints checks that both src and dest are vertices of g.
func (g *Graph[V]) requireEndpoints(src, dest V) error {
	if !g.HasVertex(src) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, src)
	}
	if !g.HasVertex(dest) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, dest)
	}

	return nil
}

// indexOf returns the position of v in s, or -1.
func indexOf[V comparable](s []V, v V) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// deleteAt removes s[i] preserving order; i < 0 leaves s unchanged.
func deleteAt[V comparable](s []V, i int) []V {
	if i < 0 {
		return s
	}
	copy(s[i:], s[i+1:])
	var zero V
	s[len(s)-1] = zero

	return s[:len(s)-1]
}
