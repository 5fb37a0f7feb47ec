package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dijkstra"
	"github.com/katalvlaran/pathfind/grid"
)

// ExampleDijkstra routes between cities where hop count and cost
// disagree: the direct highway costs more than the two back roads.
func ExampleDijkstra() {
	roads := map[string][]string{
		"Amsterdam": {"Utrecht", "Haarlem"},
		"Utrecht":   {"Rotterdam"},
		"Haarlem":   {"Rotterdam"},
	}
	toll := map[[2]string]float64{
		{"Amsterdam", "Utrecht"}: 5,
		{"Amsterdam", "Haarlem"}: 1,
		{"Utrecht", "Rotterdam"}: 1,
		{"Haarlem", "Rotterdam"}: 1,
	}
	src := core.NeighborSourceFunc[string](func(v string) []string { return roads[v] })
	weight := func(from, to string) float64 { return toll[[2]string{from, to}] }

	p, err := dijkstra.Dijkstra[string](src, "Amsterdam", "Rotterdam", weight)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost %.0f via %v\n", p.TotalWeight(), p.Vertices())
	// Output:
	// cost 2 via [Amsterdam Haarlem Rotterdam]
}

// ExampleDijkstra_terrain crosses a cost grid where the straight route
// leads over a mountain and the cheap route skirts around it.
func ExampleDijkstra_terrain() {
	g, err := grid.New([][]float64{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	}, grid.Conn4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := dijkstra.Dijkstra[grid.Cell](g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2}, g.StepCost)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost %.0f, %d steps\n", p.TotalWeight(), p.Len()-1)
	// Output:
	// cost 6, 6 steps
}
