package solver_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/solver"
)

// ExampleSolveMaze reports the minimal cost and the number of cells on any
// optimal route. Both corridors cost the same, so every open cell counts.
func ExampleSolveMaze() {
	m, err := gridgraph.ParseMazeString(
		"#######\n" +
			"#.....#\n" +
			"#S###E#\n" +
			"#.....#\n" +
			"#######\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ans, err := solver.SolveMaze(m, gridgraph.Right)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ans.MinCost, ans.CellCount(), ans.Goals)
	// Output: 3006 12 [[5,2]^ [5,2]v]
}

// ExampleRender draws one optimal route with heading glyphs.
func ExampleRender() {
	m, _ := gridgraph.ParseMazeString("#####\n#S..#\n#.#.#\n#..E#\n#####\n")
	ans, _ := solver.SolveMaze(m, gridgraph.Right)

	fmt.Println(strings.Join(solver.Render(m.Grid, ans, solver.RenderPath), "\n"))
	// Output:
	// #####
	// #>>>#
	// #.#v#
	// #..v#
	// #####
}
