// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// impl_path.go - Path(n): vertices idFn(0..n-1), edges (i-1)–i in increasing i.

package builder

import "github.com/pkg/errors"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		for i := 0; i < n; i++ {
			bp.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			if err := bp.AddEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weight()); err != nil {
				return errors.Wrap(err, methodPath)
			}
		}

		return nil
	}
}
