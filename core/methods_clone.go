// File: methods_clone.go
// Role: Cloning and clearing graph instances.
package core

// CloneEmpty returns a new Graph with the same orientation and vertices, but no edges.
// Complexity: O(V).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	clone := NewGraph[V](WithDirected(g.directed))
	for _, v := range g.order {
		clone.AddVertex(v)
	}

	return clone
}

// Clone returns a deep copy of g: orientation, vertices, adjacency and weights.
// The clone shares no mutable state with g.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	clone := g.CloneEmpty()
	for _, src := range g.order {
		dests := g.adjacency[src]
		clone.adjacency[src] = append(make([]V, 0, len(dests)), dests...)
		for _, dest := range dests {
			w, _ := g.weights.Get(src, dest)
			clone.weights.Set(src, dest, w)
		}
	}

	return clone
}

// Clear removes every vertex and edge; orientation is preserved.
// Complexity: O(1).
func (g *Graph[V]) Clear() {
	g.order = make([]V, 0)
	g.adjacency = make(map[V][]V)
	g.weights = NewWeightTable[V]()
}
