// Package dijkstra defines sentinel errors and configuration options
// for Dijkstra's shortest-path algorithm.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – vertices farther than this are left unreached. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Default +Inf.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are skipped entirely. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no path, no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
