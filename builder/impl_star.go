// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// impl_star.go - Star(n): hub CenterVertexID plus leaves idFn(1..n-1).

package builder

import "github.com/pkg/errors"

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterVertexID is the fixed ID of the hub in Star.
	CenterVertexID = "Center"
)

// Star returns a Constructor for a star with n vertices (n ≥ 2): one hub
// and n-1 leaves, each joined to the hub by a spoke.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minStarNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStarNodes)
		}
		bp.AddVertex(CenterVertexID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			bp.AddVertex(leaf)
			if err := bp.AddEdge(CenterVertexID, leaf, cfg.weight()); err != nil {
				return errors.Wrap(err, methodStar)
			}
		}

		return nil
	}
}
