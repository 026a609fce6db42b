// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on a *core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a source vertex to every
//     reachable vertex in O((V + E) log V) time.
//   - Vertices wait in an indexed priority queue (pqueue.Queue). When a
//     shorter path to a queued vertex is found its key is lowered in place
//     with Queue.Update, so the queue never holds stale duplicates and never
//     grows beyond V entries.
//   - Works on directed and undirected graphs alike; undirected edges are
//     traversable in both directions.
//
// Key features:
//
//   - ReturnPath: return a predecessor map to rebuild each path.
//   - MaxDistance: do not settle vertices farther than the cap.
//   - InfEdgeThreshold: treat edges with weight ≥ threshold as impassable.
//
// Errors:
//
//   - ErrNilGraph            the graph pointer is nil.
//   - core.ErrVertexNotFound the source is not a vertex of the graph.
//   - ErrNegativeWeight      some edge has a negative weight (checked up front).
package dijkstra
