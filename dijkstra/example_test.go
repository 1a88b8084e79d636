// Package dijkstra_test provides examples demonstrating how to use Search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// ExampleSearch runs the search on a small maze and reads the goal cost.
func ExampleSearch() {
	// 1) Parse the maze: '#' walls, 'S' start, 'E' end.
	m, err := gridgraph.ParseMazeString(
		"#####\n" +
			"#S..#\n" +
			"#.#.#\n" +
			"#..E#\n" +
			"#####\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Search from the start facing east with the default costs.
	res, err := dijkstra.Search(m.Grid, gridgraph.State{Cell: m.Start, Dir: gridgraph.Right})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Cheapest arrival over the four headings at the end cell.
	cost, tied, ok := res.MinCost(m.End)
	fmt.Println(cost, tied, ok)
	// Output: 1004 [[3,3]v] true
}

// ExampleSearch_costs shows that cheap turns change the preferred route.
func ExampleSearch_costs() {
	m, _ := gridgraph.ParseMazeString("S.\n.E\n")
	start := gridgraph.State{Cell: m.Start, Dir: gridgraph.Right}

	res, _ := dijkstra.Search(m.Grid, start, dijkstra.WithStepCost(5), dijkstra.WithTurnCost(2))
	cost, tied, _ := res.MinCost(m.End)
	fmt.Println(cost, len(tied))
	// Output: 12 1
}

// ExampleResult_Predecessors lists the two ways to face west after starting east.
func ExampleResult_Predecessors() {
	m, _ := gridgraph.ParseMazeString("S.E\n")
	res, _ := dijkstra.Search(m.Grid, gridgraph.State{Cell: m.Start, Dir: gridgraph.Right})

	west := gridgraph.State{Cell: m.Start, Dir: gridgraph.Left}
	score, _ := res.Score(west)
	fmt.Println(score, res.Predecessors(west))
	// Output: 2000 [[0,0]^ [0,0]v]
}
