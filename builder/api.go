// SPDX-License-Identifier: MIT
// Package: lvlds/builder
//
// api.go - the BuildGraph orchestrator and the blueprint constructors fill.
//
// Contract:
//   - Constructors run in the given order against one blueprint.
//   - The first failing constructor aborts the build; no graph is returned.
//   - graph.New validates the finished blueprint.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlds/dictionary"
	"github.com/katalvlaran/lvlds/graph"
)

// Edge is the edge type of every fixture.
type Edge = *graph.WeightedEdge[string, float64]

// Fixture is the graph type BuildGraph returns.
type Fixture = graph.Graph[string, float64, Edge]

// Constructor adds one topology to the blueprint using the resolved config.
// Constructors validate their parameters before touching the blueprint and
// return sentinel errors instead of panicking.
type Constructor func(bp *Blueprint, cfg builderConfig) error

// Blueprint accumulates the vertices and edges of a fixture before it is
// frozen into a graph.
type Blueprint struct {
	vertices []string
	seen     *dictionary.Set[string]
	edges    []Edge
}

func newBlueprint() *Blueprint {
	return &Blueprint{seen: dictionary.NewSet[string]()}
}

// AddVertex declares id. Re-adding an existing id is a no-op.
func (bp *Blueprint) AddVertex(id string) {
	if bp.seen.Contains(id) {
		return
	}
	bp.seen.Add(id)
	bp.vertices = append(bp.vertices, id)
}

// AddEdge appends an edge between two declared vertices.
// ErrConstructFailed if either endpoint is unknown.
func (bp *Blueprint) AddEdge(u, v string, w float64) error {
	if !bp.seen.Contains(u) || !bp.seen.Contains(v) {
		return errors.Wrapf(ErrConstructFailed, "edge %s-%s touches an undeclared vertex", u, v)
	}
	bp.edges = append(bp.edges, graph.NewEdge(u, v, w))

	return nil
}

// NumVertices returns the number of declared vertices.
func (bp *Blueprint) NumVertices() int { return len(bp.vertices) }

// NumEdges returns the number of edges added so far.
func (bp *Blueprint) NumEdges() int { return len(bp.edges) }

// BuildGraph resolves opts, applies cons in order and freezes the result with
// graph.New.
//
// Errors:
//   - ErrConstructFailed for a nil constructor;
//   - any constructor error, wrapped with its position;
//   - graph.ErrInvalidInput if the blueprint fails validation (for instance a
//     custom WeightFn returned a negative weight).
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*Fixture, error) {
	cfg := newBuilderConfig(opts...)
	bp := newBlueprint()
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(bp, cfg); err != nil {
			return nil, errors.Wrapf(err, "BuildGraph: constructor #%d", i)
		}
	}

	g, err := graph.New[string, float64](bp.vertices, bp.edges, cfg.graphOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "BuildGraph")
	}

	return g, nil
}

// Custom wraps fn as a Constructor, for one-off shapes in tests.
func Custom(fn func(bp *Blueprint) error) Constructor {
	return func(bp *Blueprint, _ builderConfig) error {
		if fn == nil {
			return errors.Wrap(ErrConstructFailed, "Custom: nil func")
		}

		return fn(bp)
	}
}
