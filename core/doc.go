// Package core provides a generic, in-memory weighted Graph and the sparse
// WeightTable that backs it.
//
// The Graph G = (V,E) is parameterised by its vertex label type V, which may
// be any comparable Go type (strings, integers, small structs, pointers).
// Label equality is plain Go equality everywhere: two labels denote the same
// vertex iff they compare ==.
//
//   - Undirected (default) vs. directed graphs (WithDirected)
//   - Real-valued weights stored in a WeightTable[V] with a running total
//   - Insertion-ordered adjacency lists for reproducible iteration
//   - Simple graphs only: a second AddEdge between the same ordered pair is
//     a silent no-op, never an overwrite and never a parallel edge
//
// Storage layout:
//
//	order       []V           // vertex catalog, insertion order
//	adjacency   map[V][]V     // src → destinations, insertion order
//	weights     *WeightTable  // (src, dest) → weight, plus aggregate
//
// An undirected edge {a,b} is stored as two physical entries a→b and b→a
// carrying the same weight. EdgeCount and Weight therefore halve the raw
// counts on undirected graphs; both entries are always added and removed
// together.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                           // O(1), idempotent
//	HasVertex(v V) bool                      // O(1)
//	RemoveVertex(v V) error                  // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(src, dest V, w float64) error        // O(1)
//	AddEdgeForced(src, dest V, w float64) error  // O(1), creates endpoints
//	RemoveEdge(src, dest V) error                // O(deg)
//	HasEdge(src, dest V) (bool, error)           // O(1)
//	EdgeWeight(src, dest V) (float64, error)     // O(1)
//
//	// Query
//	Vertices() []V                 // O(V) snapshot
//	Neighbors(v V) ([]V, error)    // O(deg) snapshot
//	Edges() []Edge[V]              // O(V+E), each logical edge once
//	VertexCount(), EdgeCount()     // O(1), O(V)
//	Weight() float64               // O(1)
//
// Errors:
//
//	ErrVertexNotFound  – an endpoint or vertex is missing
//	ErrEdgeNotFound    – the edge itself is missing
//	ErrLoopNotAllowed  – self-loop on an undirected graph
//
// Concurrency: Graph is not synchronized. A Graph must be owned by a single
// goroutine or guarded externally.
package core
