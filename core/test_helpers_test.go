// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small deterministic fixtures shared by core tests.
//   - Centralize structural invariant checks so every mutation test can reuse them.
package core_test

import (
	"testing"

	"github.com/massimo93/graph-priority-queue/core"
	"github.com/stretchr/testify/require"
)

// Common vertex labels used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.5
)

// NewSquare returns an undirected 4-cycle A-B-C-D-A with weights 1, 2, 3, 5.5.
func NewSquare(t *testing.T) *core.Graph[string] {
	t.Helper()

	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdgeForced(VertexA, VertexB, Weight1))
	require.NoError(t, g.AddEdgeForced(VertexB, VertexC, Weight2))
	require.NoError(t, g.AddEdgeForced(VertexC, VertexD, Weight3))
	require.NoError(t, g.AddEdgeForced(VertexD, VertexA, Weight5))

	return g
}

// RequireConsistent checks the structural invariants observable through the public API:
//   - Neighbors(v) succeeds for every vertex and each listed edge has a weight.
//   - Undirected graphs are symmetric in membership and weight.
//   - Weight() equals the sum over Edges(), and EdgeCount() == len(Edges()).
func RequireConsistent[V comparable](t *testing.T, g *core.Graph[V]) {
	t.Helper()

	vertices := g.Vertices()
	require.Equal(t, len(vertices), g.VertexCount())

	entries := 0
	for _, src := range vertices {
		dests, err := g.Neighbors(src)
		require.NoError(t, err)
		entries += len(dests)
		for _, dest := range dests {
			w, err := g.EdgeWeight(src, dest)
			require.NoError(t, err, "adjacency %v→%v has no weight", src, dest)
			if !g.Directed() {
				back, err := g.EdgeWeight(dest, src)
				require.NoError(t, err, "undirected edge %v→%v has no mirror", src, dest)
				require.Equal(t, w, back, "mirror weight differs for %v→%v", src, dest)
			}
		}
	}

	edges := g.Edges()
	require.Len(t, edges, g.EdgeCount())
	if g.Directed() {
		require.Equal(t, entries, g.EdgeCount())
	} else {
		require.Equal(t, entries, 2*g.EdgeCount())
	}

	sum := 0.0
	for _, e := range edges {
		sum += e.Weight
	}
	require.InDelta(t, sum, g.Weight(), 1e-9)
}
