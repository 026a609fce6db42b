// Package builder generates deterministic graph fixtures on top of core.Graph.
//
// A fixture is assembled by BuildGraph from one or more Constructors:
//
//	g, err := builder.BuildGraph(
//		nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 10))},
//		builder.Path(50),             // spanning chain keeps the graph connected
//		builder.RandomSparse(50, 0.1), // extra random edges
//	)
//
// Topologies: Path, Cycle, Complete, Grid, RandomSparse.
// Weights:    DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntWeightFn.
// Vertex IDs: DefaultIDFn ("0","1",...), SymbolIDFn ("A".."Z"), PrefixIDFn("V").
//
// Determinism: the same options, seed and constructor order always yield the
// same vertices, edges and weights. Constructors compose; an edge that already
// exists is left untouched, as core.Graph.AddEdge does.
//
// Errors (use errors.Is):
//   - ErrTooFewVertices     a size parameter is below the constructor minimum.
//   - ErrInvalidProbability a probability lies outside [0,1].
//   - ErrNeedRandSource     a stochastic constructor has no RNG (see WithSeed).
//   - ErrConstructFailed    a nil constructor or a failed graph mutation.
package builder
