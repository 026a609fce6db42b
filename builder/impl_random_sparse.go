// Package: builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor.
//
// Erdős–Rényi-like generator: each admissible pair is included independently
// with probability p. Undirected graphs try unordered pairs {i,j}, i<j;
// directed graphs try ordered pairs (i,j), i≠j. Self-loops are never drawn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run i asc, then j asc, so a fixed seed yields a fixed graph.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a graph over n vertices
// with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)

		// hit decides a trial; p ∈ {0,1} needs no RNG.
		hit := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
