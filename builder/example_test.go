package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlds/builder"
)

// ExampleBuildGraph builds a 3×3 grid and walks corner to corner.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := g.ShortestPathBetween(builder.GridVertexID(0, 0), builder.GridVertexID(2, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NumVertices(), g.NumEdges(), path.Size(), g.PathWeight(path))
	// Output: 9 12 4 4
}
