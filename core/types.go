// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted on an undirected graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed in undirected graph")
)

// Edge is a value snapshot of one logical edge.
// For undirected graphs From/To report the orientation in which the edge
// was first seen by Edges().
type Edge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

type graphConfig struct {
	directed bool
}

// WithDirected selects oriented (true) or undirected (false) edges.
// Graphs are undirected unless this option says otherwise.
func WithDirected(directed bool) GraphOption {
	return func(cfg *graphConfig) { cfg.directed = directed }
}

// Graph is a simple weighted graph over vertex labels of type V.
//
// Invariants:
//   - adjacency has exactly one key per element of order.
//   - every dest in adjacency[src] has a cell weights(src, dest), and vice versa.
//   - undirected: dest ∈ adjacency[src] ⇔ src ∈ adjacency[dest], with equal weights.
type Graph[V comparable] struct {
	directed bool

	order     []V       // vertex catalog in insertion order
	adjacency map[V][]V // src → destinations in insertion order
	weights   *WeightTable[V]
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed:  cfg.directed,
		order:     make([]V, 0),
		adjacency: make(map[V][]V),
		weights:   NewWeightTable[V](),
	}
}
