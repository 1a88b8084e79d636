// Package dijkstra provides a uniform-cost search over the oriented state
// space of a gridgraph.Grid: every open cell paired with one of four headings.
//
// Overview:
//
//   - Search settles states in non-decreasing cost using a min-heap.
//   - Moves are a straight step (StepCost) or a quarter turn in place (TurnCost).
//   - The Result holds the score table and, unlike a shortest-path tree,
//     the full predecessor DAG: every state that reaches S at S's minimal cost.
//
// When to use:
//
//   - Mazes and routing problems where changing heading has a price.
//   - Counting or drawing every optimal route, not just one (see package solver).
//
// Update rule, per offered move cur→next at cost c:
//
//   - next unknown, or c strictly below its score: score := c,
//     predecessors := {cur}, push next.
//   - c equal to its score: append cur to predecessors, no push.
//   - c above its score: ignore.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = 4 × open cells; at most three moves per state.
//   - Space: O(S) for the score table, predecessor relation and heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          nil grid.
//   - ErrStartOutOfBounds: start cell outside the grid.
//   - ErrStartBlocked:     start cell is an obstacle.
//   - ErrBadCost:          WithStepCost/WithTurnCost received a value ≤ 0.
//   - ErrBadMaxCost:       WithMaxCost received a negative value.
//
// A goal that cannot be reached is not an error; Result.MinCost reports
// it with ok == false.
//
// API reference:
//
//	func Search(
//	    g *gridgraph.Grid,
//	    start gridgraph.State,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - opts:
//	      • WithStepCost(int64), WithTurnCost(int64): move costs (defaults 1 and 1000).
//	      • WithMaxCost(int64): do not record states costlier than this.
//	      • WithContext(ctx):   abort when ctx is done.
//	      • WithLogger(*zap.Logger): debug trace of settled states.
//	      • WithOnSettle(fn):   hook per settled state.
//
// Thread safety:
//
//   - Search is single-threaded and owns its tables while running.
//   - The returned Result is read-only and safe for concurrent readers.
//
// See also:
//
//   - gridgraph.Grid, gridgraph.State: the searched state space.
//   - solver.Solve: minimal cost plus every cell on any optimal route.
package dijkstra
