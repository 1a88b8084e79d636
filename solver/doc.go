// Package solver answers the two maze questions on top of package dijkstra:
// the minimal cost from a start state to a goal cell, and how many cells lie
// on at least one route of that cost.
//
// Overview:
//
//   - Solve / SolveMaze: region pre-check, oriented search, tie collection
//     at the goal, backward walk and projection onto cells.
//   - OptimalStates / OptimalCells: the backward walk on their own, for
//     callers that already hold a dijkstra.Result.
//   - OnePath: one optimal route, following the first predecessor.
//   - Render: text overlay of the cells or of one route.
//
// The backward walk is seeded from every goal orientation tied at the
// minimum. A goal that can be entered from two sides at equal cost is
// reached in two orientations, and each contributes its own routes.
//
// Errors:
//
//   - dijkstra sentinels for a nil grid, a bad start or bad options.
//   - ErrNilMaze, ErrNilResult for nil inputs.
//   - ErrBrokenPredecessors if a walked state cannot be traced to the start.
//   - context errors when WithContext is cancelled.
//
// Example:
//
//	m, _ := gridgraph.ParseMazeString(input)
//	ans, err := solver.SolveMaze(m, gridgraph.Right)
//	fmt.Println(ans.MinCost, ans.CellCount())
package solver
