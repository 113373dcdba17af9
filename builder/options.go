// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate their arguments and panic on meaningless
// values; nothing else in the package panics.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlds/graph"
)

// BuilderOption customizes the builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand attaches an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed, making random weights
// reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithGraphOptions forwards opts to graph.New, e.g. graph.WithLogger.
func WithGraphOptions(opts ...graph.Option) BuilderOption {
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}
