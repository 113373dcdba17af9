package graph

import (
	"log/slog"
	"math"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlds/dictionary"
	"github.com/katalvlaran/lvlds/internal/validate"
	"github.com/katalvlaran/lvlds/list"
)

// Graph is an immutable undirected weighted graph over vertices V with edges
// E weighted by W.
type Graph[V comparable, W Weight, E Edger[V, W]] struct {
	vertices  []V                                            // declaration order
	edges     []E                                            // construction order, defines tie-breaks
	adjacency *dictionary.ChainedHash[V, *dictionary.Set[E]] // vertex → incident edges
	log       *slog.Logger
}

// New builds a Graph from vertices and edges.
//
// Steps:
//  1. Apply options over the defaults.
//  2. Validate vertices (nil, duplicated) and edges (nil, undeclared endpoint,
//     negative, NaN or infinite weight), collecting every problem.
//  3. Give every vertex an empty incident set and add each edge to the sets of
//     both endpoints. A self-loop lands in one set once.
//
// Returns ErrInvalidInput (possibly several, aggregated) on bad input.
//
// Complexity: O(V + E) expected.
func New[V comparable, W Weight, E Edger[V, W]](vertices []V, edges []E, opts ...Option) (*Graph[V, W, E], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[V, W, E]{
		vertices:  slices.Clone(vertices),
		edges:     slices.Clone(edges),
		adjacency: dictionary.NewChainedHash[V, *dictionary.Set[E]](),
		log:       cfg.logger,
	}

	var errs *multierror.Error
	for i, v := range g.vertices {
		if validate.IsNil(v) {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidInput, "vertex #%d is nil", i))
			continue
		}
		if g.adjacency.ContainsKey(v) {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidInput, "vertex #%d (%v) is duplicated", i, v))
			continue
		}
		g.adjacency.Put(v, dictionary.NewSet[E]())
	}

	for i, e := range g.edges {
		if validate.IsNil(e) {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidInput, "edge #%d is nil", i))
			continue
		}
		if w := float64(e.Weight()); w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			errs = multierror.Append(errs, errors.Wrapf(ErrInvalidInput, "edge #%d has weight %v", i, e.Weight()))
		}
		for _, end := range [2]V{e.Vertex1(), e.Vertex2()} {
			if !g.adjacency.ContainsKey(end) {
				errs = multierror.Append(errs, errors.Wrapf(ErrInvalidInput, "edge #%d touches undeclared vertex %v", i, end))
			}
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	for _, e := range g.edges {
		for _, end := range [2]V{e.Vertex1(), e.Vertex2()} {
			incident, _ := g.adjacency.Lookup(end)
			incident.Add(e)
		}
	}

	return g, nil
}

// NewFromSets builds a Graph from set-shaped inputs. Each set is first copied
// into a list.Double in the set's iteration order, which then fixes the
// construction order of the edges. A nil set fails with ErrInvalidInput.
func NewFromSets[V comparable, W Weight, E Edger[V, W]](vertices *dictionary.Set[V], edges *dictionary.Set[E], opts ...Option) (*Graph[V, W, E], error) {
	if vertices == nil || edges == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil vertex or edge set")
	}
	vs := list.New[V]()
	for v := range vertices.All() {
		vs.Add(v)
	}
	es := list.New[E]()
	for e := range edges.All() {
		es.Add(e)
	}

	return New[V, W, E](vs.Slice(), es.Slice(), opts...)
}

// NumVertices returns the number of vertices.
func (g *Graph[V, W, E]) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges.
func (g *Graph[V, W, E]) NumEdges() int { return len(g.edges) }

// Vertices returns a copy of the vertices in declaration order.
func (g *Graph[V, W, E]) Vertices() []V { return slices.Clone(g.vertices) }

// Edges returns a copy of the edges in construction order.
func (g *Graph[V, W, E]) Edges() []E { return slices.Clone(g.edges) }

// HasVertex reports whether v was declared.
func (g *Graph[V, W, E]) HasVertex(v V) bool {
	return g.adjacency.ContainsKey(v)
}

// IncidentEdges returns the edges touching v, in unspecified order.
// ErrInvalidInput if v was not declared.
func (g *Graph[V, W, E]) IncidentEdges(v V) ([]E, error) {
	incident, ok := g.adjacency.Lookup(v)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidInput, "unknown vertex %v", v)
	}

	return incident.Slice(), nil
}
