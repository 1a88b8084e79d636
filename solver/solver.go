package solver

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Solve searches g from start and reports the minimal cost to reach goal in
// any orientation, together with every cell on any route of that cost.
//
// Steps:
//  1. Validate the grid and options (dijkstra sentinels).
//  2. If start and goal lie in different open regions, return an
//     unreachable Answer without searching.
//  3. dijkstra.Search from start.
//  4. MinCost over the goal's four orientations; all tied ones become seeds.
//  5. Backward walk from the seeds and projection onto cells.
//
// An unreachable goal is not an error: Answer.Reachable is false, MinCost
// is zero and Cells is empty.
func Solve(g *gridgraph.Grid, start gridgraph.State, goal gridgraph.Cell, opts ...Option) (*Answer, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGrid
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := dijkstra.ValidateOptions(o.search...); err != nil {
		return nil, err
	}

	log := o.Logger.With(zap.Stringer("start", start), zap.Stringer("goal", goal))

	// Search reports a bad start itself; only short-circuit once it is known good.
	if g.Open(start.Cell) && !g.Connected(start.Cell, goal) {
		log.Debug("goal outside the start region, search skipped")
		return &Answer{}, nil
	}

	res, err := dijkstra.Search(g, start, o.search...)
	if err != nil {
		return nil, err
	}

	ans := &Answer{States: res.Len(), Result: res}
	cost, tied, ok := res.MinCost(goal)
	if !ok {
		log.Debug("goal unreachable", zap.Int("states", res.Len()))
		return ans, nil
	}

	cells, err := optimalCells(o.Ctx, res, tied)
	if err != nil {
		return nil, err
	}
	ans.Reachable = true
	ans.MinCost = cost
	ans.Goals = tied
	ans.Cells = cells

	log.Debug("solved",
		zap.Int64("cost", cost),
		zap.Int("cells", len(cells)),
		zap.Int("goals", len(tied)),
		zap.Int("states", res.Len()),
	)

	return ans, nil
}

// SolveMaze solves m from its start cell facing the given heading to its end cell.
func SolveMaze(m *gridgraph.Maze, facing gridgraph.Direction, opts ...Option) (*Answer, error) {
	if m == nil {
		return nil, ErrNilMaze
	}

	return Solve(m.Grid, gridgraph.State{Cell: m.Start, Dir: facing}, m.End, opts...)
}
