// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a new graph holding the MST.
package prim_kruskal

import (
	"sort"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/pqueue"
)

// Kruskal computes a minimum spanning forest of g.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidArgument        : g or compare is nil.
//   - ErrUnsupportedOrientation : g is directed.
//
// Steps:
//  1. Validate g and compare.
//  2. Copy every vertex into the result so isolated vertices survive.
//  3. Stable-sort g.Edges() by compare (ties keep insertion order).
//  4. Initialize DSU maps parent[] and rank[] for each vertex.
//  5. For each edge (u,v) with find(u) != find(v), union and include the edge.
//  6. Stop early once |V|-1 edges are included.
//
// Unlike Prim, Kruskal is correct for negative weights and accepts them.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[V comparable](g *core.Graph[V], compare pqueue.Comparator[float64]) (*core.Graph[V], error) {
	// 1. Validate.
	if err := validate(g, compare); err != nil {
		return nil, err
	}

	// 2. Result starts with every vertex of g.
	vertices := g.Vertices()
	result := core.NewGraph[V]()
	for _, v := range vertices {
		result.AddVertex(v)
	}

	// 3. Sort edges by weight; stable sort keeps ties deterministic.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return compare(edges[i].Weight, edges[j].Weight) < 0
	})

	// 4. Initialize disjoint-set (union-find) structures.
	parent := make(map[V]V, len(vertices))
	rank := make(map[V]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u V) V {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges the sets of u and v; false if they were already joined.
	union := func(u, v V) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		// Attach smaller-rank tree under larger-rank root.
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 5. Greedily include edges joining two components.
	limit := len(vertices) - 1
	for _, e := range edges {
		if result.EdgeCount() == limit {
			break
		}
		if !union(e.From, e.To) {
			continue
		}
		if err := result.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return result, nil
}
