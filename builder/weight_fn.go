// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn returns a WeightFn sampling whole numbers uniformly in [min, max].
// Panics if min < 0 or max < min. If rng is nil, yields min.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
