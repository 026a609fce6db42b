// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor V) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op OnVisit.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:            context.Background(),
		OnVisit:        func(V, int) error { return nil },
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result[V comparable] struct {
	Start  V
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}

	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
