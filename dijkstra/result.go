package dijkstra

import (
	"sort"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Result is the read-only outcome of Search: the score table and the
// predecessor relation. For every scored state S other than the start,
// each p in Predecessors(S) satisfies Score(p) + cost(p→S) == Score(S).
type Result struct {
	start   gridgraph.State
	scores  map[gridgraph.State]int64
	preds   map[gridgraph.State][]gridgraph.State
	settled int
}

// Start returns the state the search was seeded with.
func (r *Result) Start() gridgraph.State { return r.start }

// Len returns the number of states that received a score.
func (r *Result) Len() int { return len(r.scores) }

// Settled returns the number of states popped with their final cost.
func (r *Result) Settled() int { return r.settled }

// Score returns the minimal cost to reach s, or false when s was never reached.
func (r *Result) Score(s gridgraph.State) (int64, bool) {
	c, ok := r.scores[s]

	return c, ok
}

// Predecessors returns a copy of the states that reach s at its minimal
// cost with a single move, in discovery order. The start state and
// unreached states have none.
func (r *Result) Predecessors(s gridgraph.State) []gridgraph.State {
	p := r.preds[s]
	if len(p) == 0 {
		return nil
	}
	out := make([]gridgraph.State, len(p))
	copy(out, p)

	return out
}

// MinCost returns the cheapest score over the four headings at goal and
// every heading attaining it, in gridgraph.Directions order.
// Headings never reached are ignored; if none was reached, ok is false.
func (r *Result) MinCost(goal gridgraph.Cell) (cost int64, tied []gridgraph.State, ok bool) {
	for _, d := range gridgraph.Directions {
		s := gridgraph.State{Cell: goal, Dir: d}
		c, found := r.scores[s]
		if !found {
			continue
		}
		switch {
		case !ok || c < cost:
			cost, tied, ok = c, []gridgraph.State{s}, true
		case c == cost:
			tied = append(tied, s)
		}
	}

	return cost, tied, ok
}

// States returns every scored state ordered by row, column and heading.
func (r *Result) States() []gridgraph.State {
	out := make([]gridgraph.State, 0, len(r.scores))
	for s := range r.scores {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
