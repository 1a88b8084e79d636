// Package mazepath finds minimal-cost routes through oriented grid mazes,
// where moving straight and turning in place have different prices, and
// reports every cell that lies on at least one optimal route.
//
// 🚀 What is mazepath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: parsing '#'/'S'/'E' mazes, headings, open regions
//		• Oriented search: Dijkstra over (cell, heading) states with the full
//		  predecessor DAG of equal-cost moves, not just a tree
//		• Reconstruction: backward walk from every tied goal heading,
//		  projection onto cells, one concrete route, text overlays
//		• A CLI that solves files or whole directories concurrently
//
// ✨ Why mazepath?
//
//   - Ties are first-class: equal-cost predecessors are kept, so counting
//     every optimal cell is exact
//   - Configurable costs: step and turn prices via options, YAML or flags
//   - Deterministic: heap ties break on insertion order
//   - Observable: zap logging and settle hooks, no global state
//
// Packages:
//
//	gridgraph/   : Cell, Direction, State, Grid, Maze, parsing, regions
//	dijkstra/    : Search and Result (scores, predecessors, MinCost)
//	dfs/         : generic iterative reachability walk
//	solver/      : Solve, OptimalCells, OnePath, Render
//	config/      : YAML configuration with environment overrides
//	logging/     : zap logger construction
//	cmd/mazepath/: command line: solve, watch, config
//
// Quick example:
//
//	#####
//	#S..#     east from S, then one turn south:
//	#.#.#     cost 4 steps + 1 turn = 1004 with the default prices,
//	#..E#     5 cells on the only optimal route
//	#####
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
