package dfs

import (
	"context"
	"errors"
)

var (
	// ErrNilNext is returned when Reach is called without a successor function.
	ErrNilNext = errors.New("dfs: successor function is nil")

	// ErrVisitLimit is returned when the walk visits more vertices than
	// allowed by WithMaxVisits.
	ErrVisitLimit = errors.New("dfs: visit limit exceeded")
)

// Option configures optional behavior of Reach.
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for a reachability walk.
// Complexity remains O(V+E) when the hook is O(1).
type Options[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked once per vertex when it is first
	// expanded. Returning an error aborts the walk with that error.
	OnVisit func(v V) error

	// MaxDepth, if non-negative, stops expansion beyond the given depth.
	// A depth of 0 visits only the seeds. Default is -1 (no limit).
	MaxDepth int

	// MaxVisits, if positive, aborts with ErrVisitLimit once more than
	// this many vertices have been visited. Default is 0 (no limit).
	MaxVisits int
}

// DefaultOptions returns Options with a background context, no hook
// and no limits.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:       context.Background(),
		OnVisit:   nil,
		MaxDepth:  -1,
		MaxVisits: 0,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits expansion depth to limit.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxDepth = limit
	}
}

// WithMaxVisits returns an Option that caps the number of visited vertices.
func WithMaxVisits[V comparable](limit int) Option[V] {
	return func(o *Options[V]) {
		o.MaxVisits = limit
	}
}

// Result captures the outcome of a reachability walk.
type Result[V comparable] struct {
	// Order records vertices in the sequence they were first expanded (pre-order).
	Order []V

	// Depth maps each vertex to the number of edges from the seed that
	// discovered it, along the walk (not necessarily the shortest).
	Depth map[V]int

	// Parent maps each non-seed vertex to the vertex it was discovered from.
	Parent map[V]V

	// Visited flags which vertices were reached.
	Visited map[V]bool
}

// Has reports whether v was reached.
func (r *Result[V]) Has(v V) bool { return r.Visited[v] }

// Len returns the number of reached vertices.
func (r *Result[V]) Len() int { return len(r.Order) }
