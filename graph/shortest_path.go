package graph

import (
	"cmp"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlds/dictionary"
	"github.com/katalvlaran/lvlds/internal/validate"
	"github.com/katalvlaran/lvlds/list"
	"github.com/katalvlaran/lvlds/pqueue"
)

// costRecord is one queue entry: the cost of reaching vertex through via.
// An unreached record stands for +∞, which integer weights cannot express.
type costRecord[V comparable, W Weight, E any] struct {
	vertex  V
	via     E // predecessor edge; unset for the start and unreached records
	cost    W
	reached bool
}

// cheaper orders reached records by cost and puts unreached ones last.
func cheaper[V comparable, W Weight, E any](a, b *costRecord[V, W, E]) int {
	switch {
	case a.reached && b.reached:
		return cmp.Compare(a.cost, b.cost)
	case a.reached:
		return -1
	case b.reached:
		return 1
	}

	return 0
}

// ShortestPathBetween returns the edges of a minimum-weight path from start
// to end, ordered from start to end.
//
// Checks, in order:
//  1. nil start or end → ErrInvalidInput;
//  2. start == end → empty list;
//  3. undeclared start or end → ErrNoPathExists, since nothing links an
//     unknown vertex to the graph.
//
// ErrNoPathExists if end is not reachable. Among paths of equal weight the
// one returned is unspecified.
//
// Complexity: O((V + E) log (V + E)) time, O(V + E) space.
func (g *Graph[V, W, E]) ShortestPathBetween(start, end V) (*list.Double[E], error) {
	if validate.IsNil(start) || validate.IsNil(end) {
		return nil, errors.Wrap(ErrInvalidInput, "nil start or end vertex")
	}
	if start == end {
		return list.New[E](), nil
	}
	if !g.HasVertex(start) {
		return nil, errors.Wrapf(ErrNoPathExists, "unknown start vertex %v", start)
	}
	if !g.HasVertex(end) {
		return nil, errors.Wrapf(ErrNoPathExists, "unknown end vertex %v", end)
	}

	best := g.settle(start)

	final, _ := best.Lookup(end)
	if !final.reached {
		return nil, errors.Wrapf(ErrNoPathExists, "%v → %v", start, end)
	}

	path := list.New[E]()
	for at := final; at.vertex != start; {
		if err := path.Insert(0, at.via); err != nil {
			return nil, errors.Wrap(err, "graph: rebuilding path")
		}
		at, _ = best.Lookup(at.via.OtherVertex(at.vertex))
	}

	return path, nil
}

// settle runs lazy Dijkstra from start until every vertex is finalized and
// returns the final record of each vertex.
//
// Steps:
//  1. Index and queue one record per vertex, reached only for start.
//  2. Pop the cheapest record; a vertex already finalized means the record is
//     stale and is dropped.
//  3. Finalize the vertex. Unreached vertices relax nothing.
//  4. For each incident edge, a strictly cheaper candidate replaces the
//     neighbour's best record and is queued as a new entry.
func (g *Graph[V, W, E]) settle(start V) *dictionary.ChainedHash[V, *costRecord[V, W, E]] {
	best := dictionary.NewChainedHash[V, *costRecord[V, W, E]]()
	queue := pqueue.NewFunc(cheaper[V, W, E])
	for _, v := range g.vertices {
		rec := &costRecord[V, W, E]{vertex: v, reached: v == start}
		best.Put(v, rec)
		_ = queue.Insert(rec) // records are never nil
	}

	finalized := dictionary.NewSet[V]()
	for finalized.Size() < len(g.vertices) && !queue.IsEmpty() {
		cur, _ := queue.RemoveMin()
		if finalized.Contains(cur.vertex) {
			g.log.Debug("dijkstra: stale record dropped", slog.Any("vertex", cur.vertex), slog.Any("cost", cur.cost))
			continue
		}
		finalized.Add(cur.vertex)
		if !cur.reached {
			continue
		}

		incident, _ := g.adjacency.Lookup(cur.vertex)
		for e := range incident.All() {
			next := e.OtherVertex(cur.vertex)
			if finalized.Contains(next) {
				continue
			}
			candidate := cur.cost + e.Weight()
			known, _ := best.Lookup(next)
			if known.reached && candidate >= known.cost {
				continue
			}
			rec := &costRecord[V, W, E]{vertex: next, via: e, cost: candidate, reached: true}
			best.Put(next, rec)
			_ = queue.Insert(rec)
			g.log.Debug("dijkstra: relaxed", slog.Any("vertex", next), slog.Any("cost", candidate))
		}
	}

	return best
}

// PathWeight returns the sum of the weights of the edges in path. A nil or
// empty path weighs zero.
func (g *Graph[V, W, E]) PathWeight(path *list.Double[E]) W {
	var total W
	if path == nil {
		return total
	}
	for e := range path.All() {
		total += e.Weight()
	}

	return total
}
