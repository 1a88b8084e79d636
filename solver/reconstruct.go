package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// OptimalStates walks the predecessor relation of res backwards from every
// seed and returns each state lying on some minimum-cost route from the
// start to a seed. Seeds should be the goal states tied at the minimum
// (see dijkstra.Result.MinCost); seeding a single orientation misses
// routes that arrive in the others.
//
// An empty seed list yields an empty set. A reached state other than the
// start without predecessors returns ErrBrokenPredecessors.
func OptimalStates(res *dijkstra.Result, seeds []gridgraph.State) (map[gridgraph.State]struct{}, error) {
	return optimalStates(context.Background(), res, seeds)
}

func optimalStates(ctx context.Context, res *dijkstra.Result, seeds []gridgraph.State) (map[gridgraph.State]struct{}, error) {
	if res == nil {
		return nil, ErrNilResult
	}

	start := res.Start()
	back := func(s gridgraph.State) ([]gridgraph.State, error) {
		preds := res.Predecessors(s)
		if len(preds) == 0 && s != start {
			return nil, fmt.Errorf("%w: %v", ErrBrokenPredecessors, s)
		}

		return preds, nil
	}

	walk, err := dfs.Reach(seeds, back, dfs.WithContext[gridgraph.State](ctx))
	if err != nil {
		return nil, err
	}

	out := make(map[gridgraph.State]struct{}, walk.Len())
	for _, s := range walk.Order {
		out[s] = struct{}{}
	}

	return out, nil
}

// OptimalCells projects OptimalStates onto distinct cells, sorted row-major.
func OptimalCells(res *dijkstra.Result, seeds []gridgraph.State) ([]gridgraph.Cell, error) {
	return optimalCells(context.Background(), res, seeds)
}

func optimalCells(ctx context.Context, res *dijkstra.Result, seeds []gridgraph.State) ([]gridgraph.Cell, error) {
	states, err := optimalStates(ctx, res, seeds)
	if err != nil {
		return nil, err
	}

	seen := make(map[gridgraph.Cell]struct{}, len(states))
	cells := make([]gridgraph.Cell, 0, len(states))
	for s := range states {
		if _, dup := seen[s.Cell]; dup {
			continue
		}
		seen[s.Cell] = struct{}{}
		cells = append(cells, s.Cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	return cells, nil
}

// OnePath follows the first recorded predecessor of goal back to the start
// and returns that route in start→goal order. It returns nil when goal was
// never scored or its chain does not end at the start.
func OnePath(res *dijkstra.Result, goal gridgraph.State) []gridgraph.State {
	if res == nil {
		return nil
	}
	if _, ok := res.Score(goal); !ok {
		return nil
	}

	start := res.Start()
	path := []gridgraph.State{goal}
	for cur := goal; cur != start; {
		preds := res.Predecessors(cur)
		// every step strictly lowers the score, so more than Len steps is a cycle
		if len(preds) == 0 || len(path) > res.Len() {
			return nil
		}
		cur = preds[0]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
