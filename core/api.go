// File: api.go
// Role: Read-only getters, the Stats snapshot and the textual dump.
package core

import (
	"fmt"
	"strings"
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed    bool
	VertexCount int
	EdgeCount   int
	Weight      float64
}

// Directed reports whether g is oriented. The flag is fixed at construction.
func (g *Graph[V]) Directed() bool { return g.directed }

// Stats returns orientation, vertex count, edge count and total weight.
// Complexity: O(1).
func (g *Graph[V]) Stats() GraphStats {
	return GraphStats{
		Directed:    g.directed,
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
		Weight:      g.Weight(),
	}
}

// String renders orientation, counts, the vertex list and every adjacency
// with its weight, in insertion order.
func (g *Graph[V]) String() string {
	var sb strings.Builder
	if g.directed {
		sb.WriteString("Directed graph\n")
	} else {
		sb.WriteString("Undirected graph\n")
	}
	fmt.Fprintf(&sb, "Vertex count: %d\n", g.VertexCount())
	fmt.Fprintf(&sb, "Edge count: %d\n", g.EdgeCount())
	fmt.Fprintf(&sb, "Total weight: %g\n", g.Weight())

	sb.WriteString("Vertex list: [")
	for i, v := range g.order {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %v", v)
	}
	sb.WriteString(" ]\nAdjacencies: {\n")
	for _, src := range g.order {
		fmt.Fprintf(&sb, "\t%v: [", src)
		for i, dest := range g.adjacency[src] {
			if i > 0 {
				sb.WriteString(",")
			}
			w, _ := g.weights.Get(src, dest)
			fmt.Fprintf(&sb, " to %v in %g", dest, w)
		}
		sb.WriteString(" ]\n")
	}
	sb.WriteString("}")

	return sb.String()
}
