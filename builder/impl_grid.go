// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Vertex IDs use the fixed coordinate scheme "r,c" in row-major order and
// ignore the configured IDFn. For each cell the right edge is emitted before
// the bottom edge.

package builder

import (
	"strconv"

	"github.com/pkg/errors"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridVertexID formats a grid coordinate: GridVertexID(0, 1) → "0,1".
func GridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols grid (rows, cols ≥ 1).
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)", methodGrid, rows, cols, minGridDim)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				bp.AddVertex(GridVertexID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertexID(r, c)
				if c+1 < cols {
					if err := bp.AddEdge(u, GridVertexID(r, c+1), cfg.weight()); err != nil {
						return errors.Wrap(err, methodGrid)
					}
				}
				if r+1 < rows {
					if err := bp.AddEdge(u, GridVertexID(r+1, c), cfg.weight()); err != nil {
						return errors.Wrap(err, methodGrid)
					}
				}
			}
		}

		return nil
	}
}
