package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/graph"
)

// ExampleGraph_ShortestPathBetween finds the cheapest route between two
// cities when the direct road is longer than the detour.
func ExampleGraph_ShortestPathBetween() {
	type road = *graph.WeightedEdge[string, int]
	roads := []road{
		graph.NewEdge("Kyiv", "Zhytomyr", 140),
		graph.NewEdge("Zhytomyr", "Rivne", 190),
		graph.NewEdge("Kyiv", "Rivne", 400),
		graph.NewEdge("Rivne", "Lviv", 210),
	}
	g, err := graph.New[string, int]([]string{"Kyiv", "Zhytomyr", "Rivne", "Lviv"}, roads)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := g.ShortestPathBetween("Kyiv", "Lviv")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for e := range path.All() {
		fmt.Println(e)
	}
	fmt.Println("total:", g.PathWeight(path))
	// Output:
	// Kyiv-Zhytomyr(140)
	// Zhytomyr-Rivne(190)
	// Rivne-Lviv(210)
	// total: 540
}

// ExampleGraph_MinimumSpanningTree builds the cheapest cable layout for a
// triangle of offices.
func ExampleGraph_MinimumSpanningTree() {
	g, _ := graph.New[string, float64](
		[]string{"A", "B", "C"},
		[]*graph.WeightedEdge[string, float64]{
			graph.NewEdge("A", "B", 1.0),
			graph.NewEdge("B", "C", 2.0),
			graph.NewEdge("A", "C", 4.0),
		},
	)
	tree, total, err := g.MinimumSpanningTree()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("edges: %d, total: %.1f\n", tree.Size(), total)
	// Output: edges: 2, total: 3.0
}
