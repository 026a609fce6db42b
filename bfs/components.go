package bfs

import (
	"github.com/massimo93/graph-priority-queue/core"
)

// Components returns the connected components of g, each in BFS visit
// order, components ordered by their first vertex in g.Vertices().
// On a directed graph each component is the set reachable from its first
// unvisited vertex, which is not a strongly connected component.
//
// Complexity: O(V + E).
func Components[V comparable](g *core.Graph[V]) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[V]bool, g.VertexCount())
	var comps [][]V
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, WithFilterNeighbor(func(_, nbr V) bool { return !seen[nbr] }))
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
