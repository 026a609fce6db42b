// Package: builder
//
// impl_complete.go — Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one edge per unordered pair {i,j}, i<j, emitted i asc then j asc.
//   - Directed: both arcs i→j and j→i, in the same order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
				if g.Directed() {
					if err := addEdge(g, cfg, methodComplete, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
