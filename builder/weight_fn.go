// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// weight_fn.go - edge weight generators (WeightFn) and the options selecting them.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state and never return a negative value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi). With a nil RNG it falls back
// to DefaultEdgeWeight. Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if lo == hi {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// WithConstantWeight sets every edge weight to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws edge weights from U[lo, hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
