// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// impl_complete.go - Complete(n): every unordered pair {i, j}, i < j, in
// lexicographic order.

package builder

import "github.com/pkg/errors"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(bp *Blueprint, cfg builderConfig) error {
		if n < minCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteNodes)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			bp.AddVertex(ids[i])
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := bp.AddEdge(ids[i], ids[j], cfg.weight()); err != nil {
					return errors.Wrap(err, methodComplete)
				}
			}
		}

		return nil
	}
}
