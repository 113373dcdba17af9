package graph

import (
	"cmp"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlds/dictionary"
	"github.com/katalvlaran/lvlds/disjoint"
	"github.com/katalvlaran/lvlds/sorter"
)

// rankedEdge pairs an edge with its construction position, which breaks
// weight ties.
type rankedEdge[E any] struct {
	edge E
	pos  int
}

// byWeightThenPosition orders edges ascending by weight, then by position.
func byWeightThenPosition[V comparable, W Weight, E Edger[V, W]](a, b rankedEdge[E]) int {
	if c := cmp.Compare(a.edge.Weight(), b.edge.Weight()); c != 0 {
		return c
	}

	return cmp.Compare(a.pos, b.pos)
}

// MinimumSpanningTree computes a minimum spanning tree with Kruskal's
// algorithm and returns its edges together with their total weight.
//
// Among equal-weight edges the one constructed earlier is preferred, so the
// result is deterministic. A graph with fewer than two vertices yields an
// empty tree. ErrDisconnectedGraph if the edges run out before |V|-1 of them
// have been accepted.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) space.
func (g *Graph[V, W, E]) MinimumSpanningTree() (*dictionary.Set[E], W, error) {
	var total W
	tree := dictionary.NewSet[E]()
	want := len(g.vertices) - 1
	if want <= 0 {
		return tree, total, nil
	}

	// 1) order every edge
	ranked := make([]rankedEdge[E], len(g.edges))
	for i, e := range g.edges {
		ranked[i] = rankedEdge[E]{edge: e, pos: i}
	}
	sorted, err := sorter.TopKSort(len(ranked), ranked, byWeightThenPosition[V, W, E])
	if err != nil {
		return nil, total, errors.Wrap(err, "graph: ordering edges")
	}

	// 2) one singleton per vertex
	forest := disjoint.New[V]()
	for _, v := range g.vertices {
		if err = forest.MakeSet(v); err != nil {
			return nil, total, errors.Wrapf(err, "graph: seeding forest with %v", v)
		}
	}

	// 3) accept edges joining different components
	accepted := 0
	for _, r := range sorted {
		if accepted == want {
			break
		}
		e := r.edge
		same, err := forest.Connected(e.Vertex1(), e.Vertex2())
		if err != nil {
			return nil, total, errors.Wrapf(err, "graph: edge #%d", r.pos)
		}
		if same {
			continue
		}
		if err = forest.Union(e.Vertex1(), e.Vertex2()); err != nil {
			return nil, total, errors.Wrapf(err, "graph: edge #%d", r.pos)
		}
		tree.Add(e)
		total += e.Weight()
		accepted++
		g.log.Debug("mst: edge accepted",
			slog.Any("v1", e.Vertex1()), slog.Any("v2", e.Vertex2()), slog.Any("weight", e.Weight()))
	}

	// 4) termination guard
	if accepted < want {
		var zero W
		return nil, zero, errors.Wrapf(ErrDisconnectedGraph, "accepted %d of %d tree edges", accepted, want)
	}

	return tree, total, nil
}
