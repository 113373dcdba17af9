// Package lvlds is a small library of generic container data structures and
// the weighted-graph algorithms built on them.
//
// Packages, leaf first:
//
//	dictionary/ - Dictionary contract, ArrayDictionary, ChainedHash, Set
//	list/       - Double, a doubly linked list
//	pqueue/     - Heap, a 4-ary min-heap priority queue
//	sorter/     - TopKSort, the k smallest items in order
//	disjoint/   - Forest, union-find with union by rank and path compression
//	graph/      - immutable undirected weighted Graph: Kruskal MST, lazy Dijkstra
//	builder/    - deterministic fixtures: Path, Cycle, Star, Complete, Grid
//
// Quick example:
//
//	    A──1──B
//	    │     │
//	    5     1
//	    │     │
//	    └──C──┘
//
//	g, _ := graph.New[string, int](
//	    []string{"A", "B", "C"},
//	    []*graph.WeightedEdge[string, int]{
//	        graph.NewEdge("A", "B", 1),
//	        graph.NewEdge("B", "C", 1),
//	        graph.NewEdge("A", "C", 5),
//	    },
//	)
//	path, _ := g.ShortestPathBetween("A", "C") // A–B, B–C
//	tree, total, _ := g.MinimumSpanningTree()  // {A–B, B–C}, 2
//
// Nothing here is safe for concurrent mutation; a constructed Graph is
// read-only and may be queried from several goroutines.
package lvlds
