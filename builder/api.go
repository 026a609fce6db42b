// Package: builder
//
// api.go — public entry point for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Same inputs, options and seed in the same constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// addEdge draws a weight and links u and v, tagging failures with method.
func addEdge(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}
