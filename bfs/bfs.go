// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any OnVisit error.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Start:  start,
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen neighbor.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.v
		w.queue = append(w.queue, queueItem[V]{v: nbr, depth: next})
	}

	return nil
}
