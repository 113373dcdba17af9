// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// impl_cycle.go - Cycle(n): a Path(n) closed by the edge (n-1)–0.

package builder

import "github.com/pkg/errors"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3). Edges are
// emitted as i–(i+1) mod n for i = 0..n-1.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
		}
		for i := 0; i < n; i++ {
			bp.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			if err := bp.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight()); err != nil {
				return errors.Wrap(err, methodCycle)
			}
		}

		return nil
	}
}
