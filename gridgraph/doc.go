// Package gridgraph treats a 2D obstacle map as the state space of an
// oriented walker: every open cell paired with one of four headings.
//
// What:
//
//   - Grid wraps a rectangular obstacle matrix and is immutable once built.
//   - Direction is a closed enum with pure TurnLeft/TurnRight permutations.
//   - State (cell, heading) is the vertex type used by package dijkstra.
//   - ParseMaze reads '#'/'S'/'E' text into a Grid plus start and end cells.
//   - OpenRegions/Connected detect cells that can never reach each other.
//
// Why:
//
//   - Puzzle mazes: turn-penalised routing between two markers.
//   - Robotics and games: agents whose heading matters for cost.
//
// Complexity:
//
//   - NewGrid, ParseMaze: O(R×C) time and memory.
//   - InBounds, Blocked, Step: O(1).
//   - OpenRegions, RegionOf, Connected: O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart / ErrMissingEnd: maze text lacks 'S' or 'E'.
//   - ErrDuplicateMarker: 'S' or 'E' appears more than once.
//   - ErrBadDirection: ParseDirection received an unknown name.
package gridgraph
