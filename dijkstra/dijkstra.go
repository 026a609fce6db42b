// Package dijkstra implements Dijkstra's shortest-path algorithm with
// in-place decrease-key on an indexed priority queue.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/pqueue"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: vertex → minimum distance; math.Inf(1) if unreachable (or beyond MaxDistance).
//   - prev: vertex → predecessor on a shortest path, only with WithReturnPath().
//     The source and unreachable vertices have no entry.
//   - err:  ErrNilGraph, core.ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra[V comparable](g *core.Graph[V], source V, opts ...Option) (map[V]float64, map[V]V, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %v", core.ErrVertexNotFound, source)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) dist[v] = +∞ for all v, then 0 for the source.
	vertices := g.Vertices()
	dist := make(map[V]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	prev := make(map[V]V, len(vertices))
	queue := pqueue.New[V, float64](pqueue.Min[float64])
	if err := queue.Insert(source, 0); err != nil {
		return nil, nil, err
	}

	// 5) Settle the closest queued vertex and relax its outgoing edges.
	for !queue.IsEmpty() {
		u, d, err := queue.Extract()
		if err != nil {
			return nil, nil, err
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, err
		}
		for _, v := range neighbors {
			w, err := g.EdgeWeight(u, v)
			if err != nil {
				return nil, nil, err
			}
			if w >= cfg.InfEdgeThreshold {
				continue // impassable
			}
			nd := d + w
			if nd > cfg.MaxDistance || nd >= dist[v] {
				continue
			}

			dist[v] = nd
			prev[v] = u
			if queue.Contains(v) {
				err = queue.Update(v, nd)
			} else {
				err = queue.Insert(v, nd)
			}
			if err != nil {
				return nil, nil, err
			}
		}
	}

	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	return dist, prev, nil
}

// Path rebuilds the vertex sequence source → … → target from a predecessor
// map returned by Dijkstra with WithReturnPath(). It returns nil when target
// is unreachable.
func Path[V comparable](prev map[V]V, source, target V) []V {
	path := []V{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	// Reverse into source-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
