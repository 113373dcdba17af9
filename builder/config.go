// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// config.go - resolved builder configuration and its deterministic defaults.
//
// Defaults:
//   • idFn      = DefaultIDFn       ("0","1","2",...)
//   • rng       = nil               (no randomness unless seeded)
//   • weightFn  = DefaultWeightFn   (DefaultEdgeWeight on every edge)
//   • graphOpts = none

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlds/graph"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn      IDFn
	rng       *rand.Rand
	weightFn  WeightFn
	graphOpts []graph.Option
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
