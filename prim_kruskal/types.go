// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/pqueue"
)

// Sentinel errors returned by Prim, Kruskal and Compute.
var (
	// ErrInvalidArgument indicates a structurally unusable input, such as a nil graph.
	ErrInvalidArgument = errors.New("prim_kruskal: invalid argument")

	// ErrUnsupportedOrientation indicates the graph is directed; MST requires undirected.
	ErrUnsupportedOrientation = errors.New("prim_kruskal: MST requires an undirected graph")

	// ErrUnsupportedNegativeWeight indicates Prim found an edge with a negative weight.
	ErrUnsupportedNegativeWeight = errors.New("prim_kruskal: negative edge weight not supported")
)

// MethodPrim selects Prim's algorithm (grow from a root using an indexed priority queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs and how weights are ordered.
//
// Fields:
//
//	Method  string                       — MethodPrim or MethodKruskal.
//	Compare pqueue.Comparator[float64]   — minimizing order over weights.
type MSTOptions struct {
	Method  string
	Compare pqueue.Comparator[float64]
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithComparator returns an Option that replaces the weight ordering.
func WithComparator(compare pqueue.Comparator[float64]) Option {
	return func(opts *MSTOptions) {
		opts.Compare = compare
	}
}

// DefaultOptions returns MSTOptions for Prim with ascending weight order.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:  MethodPrim,
		Compare: pqueue.Min[float64],
	}
}

// Compute selects and runs the MST algorithm named by the options.
// root is the Prim start vertex and is ignored by Kruskal.
//
//	– MethodPrim:    Prim(g, root, Compare).
//	– MethodKruskal: Kruskal(g, Compare).
//	– otherwise:     ErrInvalidArgument.
func Compute[V comparable](g *core.Graph[V], root V, opts ...Option) (*core.Graph[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodPrim:
		return Prim(g, root, cfg.Compare)
	case MethodKruskal:
		return Kruskal(g, cfg.Compare)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, cfg.Method)
	}
}

// validate applies the checks shared by both algorithms.
func validate[V comparable](g *core.Graph[V], compare pqueue.Comparator[float64]) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}
	if compare == nil {
		return fmt.Errorf("%w: comparator is nil", ErrInvalidArgument)
	}
	if g.Directed() {
		return ErrUnsupportedOrientation
	}

	return nil
}
