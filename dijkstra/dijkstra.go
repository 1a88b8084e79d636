// Package dijkstra implements a uniform-cost search over the oriented
// state space (cell, heading) of a gridgraph.Grid, recording every
// minimum-cost predecessor of every reachable state.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4 × open cells.
//   - Each state is settled at most once; each settled state relaxes
//     at most three moves (step, turn left, turn right).
//   - Space: O(S) for the score table, predecessor relation and heap.
//
// Notes on implementation choices:
//
//   - “Lazy” decrease-key: strictly better costs push a new heap entry;
//     stale entries are skipped when popped (settled set).
//   - Equal-cost arrivals never re-push but always extend the predecessor
//     set, so every tied optimal route stays recoverable.
//   - Heap ties are broken by insertion sequence, making runs repeatable.
package dijkstra

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Search computes the minimal cost from start to every state reachable
// on g, together with the predecessor DAG of all minimum-cost steps.
// It accepts functional options to customize costs, cutoffs and tracing.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. All options must be valid (ErrBadCost, ErrBadMaxCost).
//  3. start.Cell must be inside g (ErrStartOutOfBounds).
//  4. start.Cell must be open (ErrStartBlocked).
//
// An unreachable goal is not an error: its states simply have no score
// in the returned Result.
//
// Complexity:
//
//   - Time:  O(S log S)
//   - Space: O(S)
func Search(g *gridgraph.Grid, start gridgraph.State, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.InBounds(start.Cell) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start.Cell)
	}
	if g.Blocked(start.Cell) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start.Cell)
	}

	capHint := 4 * g.OpenCount()
	r := &runner{
		g:       g,
		options: cfg,
		log:     cfg.Logger.With(zap.Stringer("start", start)),
		res: &Result{
			start:  start,
			scores: make(map[gridgraph.State]int64, capHint),
			preds:  make(map[gridgraph.State][]gridgraph.State, capHint),
		},
		settled: make(map[gridgraph.State]bool, capHint),
		pq:      make(statePQ, 0, capHint),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}
	r.log.Debug("search finished",
		zap.Int("states", len(r.res.scores)),
		zap.Int("settled", r.res.settled),
		zap.Uint64("pushes", r.seq),
	)

	return r.res, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *gridgraph.Grid          // obstacle map; read-only
	options Options                  // validated configuration
	log     *zap.Logger              // trace sink
	res     *Result                  // score table and predecessor relation under construction
	settled map[gridgraph.State]bool // states whose cost is final
	pq      statePQ                  // min-heap of pending states
	seq     uint64                   // insertion counter for deterministic tie order
}

// init seeds the score table and heap with the start state at cost 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	r.res.scores[r.res.start] = 0
	r.push(r.res.start, 0)
}

func (r *runner) push(s gridgraph.State, cost int64) {
	heap.Push(&r.pq, &stateItem{state: s, cost: cost, seq: r.seq})
	r.seq++
}

// process repeatedly pops the cheapest pending state and relaxes its moves
// until the heap is empty or the context is cancelled.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("dijkstra: search interrupted after %d states: %w", r.res.settled, ctx.Err())
		default:
		}

		item := heap.Pop(&r.pq).(*stateItem)
		if r.settled[item.state] {
			continue // stale entry
		}
		r.settled[item.state] = true
		r.res.settled++

		r.log.Debug("settle", zap.Stringer("state", item.state), zap.Int64("cost", item.cost))
		if r.options.OnSettle != nil {
			r.options.OnSettle(item.state, item.cost)
		}

		r.relax(item.state, item.cost)
	}

	return nil
}

// relax offers the three moves out of cur to the score table.
func (r *runner) relax(cur gridgraph.State, cost int64) {
	if next, ok := r.g.Step(cur.Cell, cur.Dir); ok {
		r.offer(cur, gridgraph.State{Cell: next, Dir: cur.Dir}, cost, r.options.StepCost)
	}
	r.offer(cur, gridgraph.State{Cell: cur.Cell, Dir: cur.Dir.TurnLeft()}, cost, r.options.TurnCost)
	r.offer(cur, gridgraph.State{Cell: cur.Cell, Dir: cur.Dir.TurnRight()}, cost, r.options.TurnCost)
}

// offer applies the update rule for one move cur→next priced base+delta:
//   - base+delta above MaxCost: drop, compared without adding;
//   - unknown or strictly cheaper: record cost, predecessors = {cur}, push;
//   - equal: append cur to the predecessors, no push.
func (r *runner) offer(cur, next gridgraph.State, base, delta int64) {
	if delta > r.options.MaxCost-base {
		return
	}
	cost := base + delta
	old, known := r.res.scores[next]
	switch {
	case !known || cost < old:
		r.res.scores[next] = cost
		r.res.preds[next] = []gridgraph.State{cur}
		r.push(next, cost)
	case cost == old:
		r.res.preds[next] = append(r.res.preds[next], cur)
	}
}

// stateItem is a pending heap entry.
type stateItem struct {
	state gridgraph.State
	cost  int64
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by cost, then insertion order.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost; equal costs pop in insertion order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
