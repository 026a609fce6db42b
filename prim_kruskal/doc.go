// Package prim_kruskal computes minimum spanning trees (and forests) of an
// undirected, weighted *core.Graph.
//
// What & Why
//
//   - An MST of a connected undirected graph G = (V, E) is a cycle-free subset
//     T ⊆ E that connects every vertex with the minimum possible total weight.
//   - When G is disconnected there is no spanning tree; both algorithms here
//     return a spanning forest instead (one tree per component, isolated
//     vertices included). This is accepted behaviour, not an error.
//
// Algorithms Provided
//
//   - Prim(g, start, compare) (*core.Graph[V], error)
//
//   - Strategy: every vertex is bulk-loaded into an indexed priority queue
//     (pqueue.Queue) with a sentinel key "worse than any weight". The start
//     vertex is lowered to 0. Each extracted vertex u joins the result,
//     either attached to its recorded parent or as the root of a new
//     component, and every neighbour v still queued is relaxed in place
//     with Queue.Update when weight(u, v) beats v's current key.
//
//   - Complexity: O((V + E) log V) time, O(V) extra memory.
//
//   - Precondition: weights must be non-negative. A negative weight on an
//     edge reached during relaxation aborts with ErrUnsupportedNegativeWeight.
//
//   - Kruskal(g, compare) (*core.Graph[V], error)
//
//   - Strategy: stable-sort all edges by compare, then add each edge whose
//     endpoints lie in different union-find components.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
// The comparator must be a strict, transitive minimizing order over weights
// (smaller weights first). pqueue.Min[float64] is the canonical choice and
// the default used by Compute.
//
// Error Conditions
//
//   - ErrInvalidArgument           : graph or comparator is nil, unknown method.
//   - ErrUnsupportedOrientation    : graph is directed.
//   - core.ErrVertexNotFound       : Prim start vertex is not in the graph.
//   - ErrUnsupportedNegativeWeight : Prim met an edge with weight < 0.
//
// The returned graph is freshly allocated, undirected, and shares no
// mutable state with the input. On error no partial result is returned.
package prim_kruskal
