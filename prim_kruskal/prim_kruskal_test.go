package prim_kruskal_test

import (
	"testing"

	"github.com/massimo93/graph-priority-queue/bfs"
	"github.com/massimo93/graph-priority-queue/builder"
	"github.com/massimo93/graph-priority-queue/core"
	"github.com/massimo93/graph-priority-queue/pqueue"
	"github.com/massimo93/graph-priority-queue/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCities constructs the undirected city graph:
//
//	Londra—NewYork (5), Dubai—Londra (12), Parigi—NewYork (3), Roma—Londra (6),
//	Roma—Dubai (2), Milano—NewYork (7), Manchester—Parigi (1).
//
// Its MST has 7 vertices, 6 edges and total weight 24.
func buildCities(t testing.TB) *core.Graph[string] {
	t.Helper()

	g := core.NewGraph[string]()
	for _, e := range []core.Edge[string]{
		{From: "Londra", To: "NewYork", Weight: 5},
		{From: "Dubai", To: "Londra", Weight: 12},
		{From: "Parigi", To: "NewYork", Weight: 3},
		{From: "Roma", To: "Londra", Weight: 6},
		{From: "Roma", To: "Dubai", Weight: 2},
		{From: "Milano", To: "NewYork", Weight: 7},
		{From: "Manchester", To: "Parigi", Weight: 1},
	} {
		require.NoError(t, g.AddEdgeForced(e.From, e.To, e.Weight))
	}

	return g
}

// buildMediumGraph creates a connected, weighted graph on V0..V(n-1): a
// spanning path V0—V1—…—V(n-1) plus every other pair with probability p.
// Weights are uniform in [1,101); the seed makes the graph reproducible.
func buildMediumGraph(tb testing.TB, n int, p float64, seed int64) *core.Graph[string] {
	tb.Helper()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithIDScheme(builder.PrefixIDFn("V")),
			builder.WithWeightFn(builder.UniformWeightFn(1, 101)),
		},
		builder.Path(n),
		builder.RandomSparse(n, p),
	)
	require.NoError(tb, err)

	return g
}

// requireSpanningForest checks that mst covers g's vertices, uses only g's
// edges with g's weights, and has |V| - components edges while keeping g's
// components connected (so it is acyclic).
func requireSpanningForest(t *testing.T, g, mst *core.Graph[string], components int) {
	t.Helper()

	require.False(t, mst.Directed())
	require.ElementsMatch(t, g.Vertices(), mst.Vertices())
	require.Equal(t, g.VertexCount()-components, mst.EdgeCount())
	for _, e := range mst.Edges() {
		w, err := g.EdgeWeight(e.From, e.To)
		require.NoError(t, err, "MST edge %s-%s not in input", e.From, e.To)
		require.Equal(t, w, e.Weight)
	}

	gc, err := bfs.Components(g)
	require.NoError(t, err)
	require.Len(t, gc, components)
	mc, err := bfs.Components(mst)
	require.NoError(t, err)
	require.Len(t, mc, components)
}

func TestPrim_WorkedExample(t *testing.T) {
	g := buildCities(t)

	mst, err := prim_kruskal.Prim(g, "Roma", pqueue.Min[float64])
	require.NoError(t, err)
	assert.Equal(t, 7, mst.VertexCount())
	assert.Equal(t, 6, mst.EdgeCount())
	assert.Equal(t, 24.0, mst.Weight())
	requireSpanningForest(t, g, mst, 1)

	// The MST must not contain the heavy Dubai—Londra edge.
	ok, err := mst.HasEdge("Dubai", "Londra")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrim_EveryStartGivesSameWeight(t *testing.T) {
	g := buildCities(t)
	for _, start := range g.Vertices() {
		mst, err := prim_kruskal.Prim(g, start, pqueue.Min[float64])
		require.NoError(t, err, start)
		assert.Equal(t, 24.0, mst.Weight(), start)
	}
}

func TestPrim_InputUntouched(t *testing.T) {
	g := buildCities(t)
	before := g.String()

	mst, err := prim_kruskal.Prim(g, "Roma", pqueue.Min[float64])
	require.NoError(t, err)
	assert.Equal(t, before, g.String())

	// The result is independently owned.
	require.NoError(t, mst.RemoveVertex("Roma"))
	assert.True(t, g.HasVertex("Roma"))
}

func TestPrim_Validation(t *testing.T) {
	g := buildCities(t)

	_, err := prim_kruskal.Prim[string](nil, "Roma", pqueue.Min[float64])
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidArgument)

	_, err = prim_kruskal.Prim(g, "Roma", nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidArgument)

	_, err = prim_kruskal.Prim(g, "Tokyo", pqueue.Min[float64])
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	directed := core.NewGraph[string](core.WithDirected(true))
	require.NoError(t, directed.AddEdgeForced("A", "B", 1))
	_, err = prim_kruskal.Prim(directed, "A", pqueue.Min[float64])
	assert.ErrorIs(t, err, prim_kruskal.ErrUnsupportedOrientation)
}

func TestPrim_NegativeWeight(t *testing.T) {
	g := buildCities(t)
	require.NoError(t, g.AddEdgeForced("X", "Y", -2))

	mst, err := prim_kruskal.Prim(g, "Roma", pqueue.Min[float64])
	assert.ErrorIs(t, err, prim_kruskal.ErrUnsupportedNegativeWeight)
	assert.Nil(t, mst)

	// Same outcome when the negative edge is inside the start's component.
	g2 := buildCities(t)
	require.NoError(t, g2.AddEdgeForced("Roma", "Parigi", -1))
	_, err = prim_kruskal.Prim(g2, "Milano", pqueue.Min[float64])
	assert.ErrorIs(t, err, prim_kruskal.ErrUnsupportedNegativeWeight)
}

func TestPrim_DisconnectedGivesForest(t *testing.T) {
	g := buildCities(t)
	g.AddVertex("Isola")
	require.NoError(t, g.AddEdgeForced("Oslo", "Bergen", 4))

	mst, err := prim_kruskal.Prim(g, "Roma", pqueue.Min[float64])
	require.NoError(t, err)
	requireSpanningForest(t, g, mst, 3)
	assert.Equal(t, 28.0, mst.Weight())

	deg, err := mst.Degree("Isola")
	require.NoError(t, err)
	assert.Zero(t, deg, "unreachable vertex must be an isolated component")
}

func TestPrim_SingleVertex(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddVertex(1)

	mst, err := prim_kruskal.Prim(g, 1, pqueue.Min[float64])
	require.NoError(t, err)
	assert.Equal(t, []int{1}, mst.Vertices())
	assert.Zero(t, mst.EdgeCount())
}

func TestPrim_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdgeForced("A", "B", 0))
	require.NoError(t, g.AddEdgeForced("B", "C", 0))
	require.NoError(t, g.AddEdgeForced("A", "C", 1))

	mst, err := prim_kruskal.Prim(g, "C", pqueue.Min[float64])
	require.NoError(t, err)
	requireSpanningForest(t, g, mst, 1)
	assert.Zero(t, mst.Weight())
}

func TestPrim_MatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := buildMediumGraph(t, 60, 0.1, seed)

		p, err := prim_kruskal.Prim(g, "V0", pqueue.Min[float64])
		require.NoError(t, err)
		k, err := prim_kruskal.Kruskal(g, pqueue.Min[float64])
		require.NoError(t, err)

		requireSpanningForest(t, g, p, 1)
		requireSpanningForest(t, g, k, 1)
		assert.InDelta(t, k.Weight(), p.Weight(), 1e-9, "seed %d", seed)
	}
}

func TestKruskal_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal[string](nil, pqueue.Min[float64])
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidArgument)

	directed := core.NewGraph[string](core.WithDirected(true))
	_, err = prim_kruskal.Kruskal(directed, pqueue.Min[float64])
	assert.ErrorIs(t, err, prim_kruskal.ErrUnsupportedOrientation)
}

func TestKruskal_ForestAndNegativeWeights(t *testing.T) {
	g := buildCities(t)
	require.NoError(t, g.AddEdgeForced("X", "Y", -2))
	g.AddVertex("Isola")

	mst, err := prim_kruskal.Kruskal(g, pqueue.Min[float64])
	require.NoError(t, err)
	requireSpanningForest(t, g, mst, 3)
	assert.Equal(t, 22.0, mst.Weight())
}

func TestCompute(t *testing.T) {
	g := buildCities(t)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		mst, err := prim_kruskal.Compute(g, "Roma", prim_kruskal.WithMethod(method))
		require.NoError(t, err, method)
		assert.Equal(t, 24.0, mst.Weight(), method)
	}

	_, err := prim_kruskal.Compute(g, "Roma", prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidArgument)

	// A maximizing order yields a maximum spanning tree under Kruskal.
	maxST, err := prim_kruskal.Compute(g, "",
		prim_kruskal.WithMethod(prim_kruskal.MethodKruskal),
		prim_kruskal.WithComparator(pqueue.Max[float64]),
	)
	require.NoError(t, err)
	assert.Equal(t, 34.0, maxST.Weight())
}
