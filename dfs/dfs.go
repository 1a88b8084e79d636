package dfs

import "fmt"

// frame is a pending stack entry.
type frame[V comparable] struct {
	v         V
	depth     int
	parent    V
	hasParent bool
}

// walker encapsulates state during a walk.
type walker[V comparable] struct {
	next  func(V) ([]V, error)
	opts  Options[V]
	res   *Result[V]
	stack []frame[V]
}

// Reach visits every vertex reachable from seeds by repeatedly applying
// next, each vertex exactly once. The order in which ties are expanded
// does not affect the reached set. An empty seed list yields an empty result.
func Reach[V comparable](seeds []V, next func(V) ([]V, error), opts ...Option[V]) (*Result[V], error) {
	if next == nil {
		return nil, ErrNilNext
	}

	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker[V]{
		next: next,
		opts: o,
		res: &Result[V]{
			Order:   make([]V, 0, len(seeds)),
			Depth:   make(map[V]int, len(seeds)),
			Parent:  make(map[V]V),
			Visited: make(map[V]bool, len(seeds)),
		},
	}
	// Reverse push so the first seed is expanded first.
	for i := len(seeds) - 1; i >= 0; i-- {
		w.stack = append(w.stack, frame[V]{v: seeds[i]})
	}
	if err := w.run(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

func (w *walker[V]) run() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited[f.v] {
			continue
		}

		if w.opts.MaxVisits > 0 && len(w.res.Order) >= w.opts.MaxVisits {
			return fmt.Errorf("%w: %d", ErrVisitLimit, w.opts.MaxVisits)
		}
		w.res.Visited[f.v] = true
		w.res.Depth[f.v] = f.depth
		if f.hasParent {
			w.res.Parent[f.v] = f.parent
		}
		w.res.Order = append(w.res.Order, f.v)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.v); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", f.v, err)
			}
		}

		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		nbs, err := w.next(f.v)
		if err != nil {
			return fmt.Errorf("dfs: successors of %v: %w", f.v, err)
		}
		for i := len(nbs) - 1; i >= 0; i-- {
			if !w.res.Visited[nbs[i]] {
				w.stack = append(w.stack, frame[V]{v: nbs[i], depth: f.depth + 1, parent: f.v, hasParent: true})
			}
		}
	}

	return nil
}
