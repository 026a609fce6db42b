// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree with an indexed priority queue and in-place key relaxation.
package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/pqueue"
)

// unreached is the sentinel key of a vertex no edge has reached yet.
const unreached = math.MaxFloat64

// Prim computes a minimum spanning tree of g rooted at start, or a spanning
// forest when g is disconnected. compare must order weights ascending.
//
// Error Conditions:
//   - ErrInvalidArgument           : g or compare is nil.
//   - ErrUnsupportedOrientation    : g is directed.
//   - core.ErrVertexNotFound       : start is not a vertex of g.
//   - ErrUnsupportedNegativeWeight : an edge with weight < 0 was relaxed.
//
// Steps:
//  1. Validate g, compare and start.
//  2. Bulk-load every vertex into the queue with key = unreached; mirror the
//     keys in a map; lower start to 0.
//  3. While the queue is non-empty, extract u. With no parent, u roots a new
//     component (isolated vertex, key reset to 0); otherwise add edge
//     (u, parent(u), key(u)) to the result.
//  4. For each neighbour v of u still queued: reject negative weights; if
//     weight(u, v) beats key(v), lower key(v) via Update and set parent(v) = u.
//
// Complexity: O((V + E) log V) time, O(V) memory besides the result.
func Prim[V comparable](g *core.Graph[V], start V, compare pqueue.Comparator[float64]) (*core.Graph[V], error) {
	// 1. Validate inputs.
	if err := validate(g, compare); err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %v", core.ErrVertexNotFound, start)
	}

	// 2. Seed queue and key map with the sentinel.
	vertices := g.Vertices()
	keys := make([]float64, len(vertices))
	key := make(map[V]float64, len(vertices))
	for i, v := range vertices {
		keys[i] = unreached
		key[v] = unreached
	}
	queue, err := pqueue.NewFrom(vertices, keys, compare)
	if err != nil {
		return nil, err
	}
	parent := make(map[V]V, len(vertices))

	key[start] = 0
	if err = queue.Update(start, 0); err != nil {
		return nil, err
	}

	result := core.NewGraph[V]()
	for !queue.IsEmpty() {
		// 3. Attach the closest vertex to the forest.
		u, _, err := queue.Extract()
		if err != nil {
			return nil, err
		}
		if p, ok := parent[u]; ok {
			if err = result.AddEdgeForced(u, p, key[u]); err != nil {
				return nil, err
			}
		} else {
			result.AddVertex(u)
			key[u] = 0
		}

		// 4. Relax edges towards vertices outside the forest.
		if err = relax(g, queue, u, key, parent, compare); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// relax lowers the key of every queued neighbour of u reachable more cheaply through u.
func relax[V comparable](
	g *core.Graph[V],
	queue *pqueue.Queue[V, float64],
	u V,
	key map[V]float64,
	parent map[V]V,
	compare pqueue.Comparator[float64],
) error {
	neighbors, err := g.Neighbors(u)
	if err != nil {
		return err
	}

	for _, v := range neighbors {
		if !queue.Contains(v) {
			continue // already in the forest
		}
		w, err := g.EdgeWeight(u, v)
		if err != nil {
			return err
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v-%v weight=%g", ErrUnsupportedNegativeWeight, u, v, w)
		}
		if compare(w, key[v]) >= 0 {
			continue
		}
		key[v] = w
		if err = queue.Update(v, w); err != nil {
			return err
		}
		parent[v] = u
	}

	return nil
}
