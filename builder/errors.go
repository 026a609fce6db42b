// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not apply a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
