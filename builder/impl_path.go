// Package: builder
//
// impl_path.go — Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i → i+1 in ascending i; Cycle closes with n-1 → 0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

// chain links 0-1-…-(n-1), and (n-1)-0 when closed.
func chain(g *core.Graph[string], cfg builderConfig, method string, n int, closed bool) error {
	addVertices(g, cfg, n)

	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		if err := addEdge(g, cfg, method, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
			return err
		}
	}

	return nil
}
