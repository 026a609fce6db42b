// Package: builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs use the fixed scheme "r,c" in row-major order; cfg.idFn is not consulted.
//   - For each cell emits Right (r,c+1) then Bottom (r+1,c) where they exist.
//     Directed graphs also get the reverse arcs.
//
// Complexity: O(rows*cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/massimo93/graph-priority-queue/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(GridID(r, c))
			}
		}

		link := func(u, v string) error {
			if err := addEdge(g, cfg, methodGrid, u, v); err != nil {
				return err
			}
			if g.Directed() {
				return addEdge(g, cfg, methodGrid, v, u)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
