// Package dijkstra defines core types and configuration options
// for the oriented shortest-path search over a gridgraph.Grid.
//
// The search graph has one vertex per (cell, heading) state and two
// move classes:
//
//	– Step:  advance one cell in the current heading (StepCost, default 1).
//	– Turn:  rotate a quarter turn left or right in place (TurnCost, default 1000).
//
// Options:
//
//	– WithStepCost / WithTurnCost: positive move costs.
//	– WithMaxCost:     optional cap on accumulated cost; states beyond it are not recorded.
//	– WithContext:     cancellation, checked once per heap pop.
//	– WithLogger:      zap logger receiving a debug trace of popped states.
//	– WithOnSettle:    hook invoked once per settled state.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if the start cell lies outside the grid.
//	– ErrStartBlocked     if the start cell is an obstacle.
//	– ErrBadCost          if a step or turn cost is not positive.
//	– ErrBadMaxCost       if MaxCost < 0.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfBounds indicates the start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("dijkstra: start cell out of bounds")

	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = errors.New("dijkstra: start cell is an obstacle")

	// ErrBadCost indicates a step or turn cost that is zero or negative.
	// Zero-cost moves would let equal-cost cycles into the predecessor DAG.
	ErrBadCost = errors.New("dijkstra: move costs must be positive")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Default move costs of the reference maze puzzle.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// Options configures the behavior of Search.
//
// StepCost – cost of moving one cell straight ahead. Must be > 0.
// TurnCost – cost of a quarter turn in place. Must be > 0.
// MaxCost  – states whose cost would exceed this are never recorded.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	StepCost int64
	TurnCost int64
	MaxCost  int64
	Ctx      context.Context
	Logger   *zap.Logger
	OnSettle func(s gridgraph.State, cost int64)

	// first invalid option, surfaced by Search
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithStepCost sets the cost of one straight step.
// A non-positive value is recorded and returned by Search as ErrBadCost.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.fail(fmt.Errorf("%w: step cost %d", ErrBadCost, c))
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of one quarter turn.
// A non-positive value is recorded and returned by Search as ErrBadCost.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.fail(fmt.Errorf("%w: turn cost %d", ErrBadCost, c))
			return
		}
		o.TurnCost = c
	}
}

// WithMaxCost caps the accumulated cost explored by the search.
// A negative value is recorded and returned by Search as ErrBadMaxCost.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(ErrBadMaxCost)
			return
		}
		o.MaxCost = max
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a logger for the debug trace. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle installs a hook called once for each state whose
// cost becomes final, in non-decreasing cost order.
func WithOnSettle(fn func(s gridgraph.State, cost int64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// ValidateOptions applies opts to the defaults and returns the first
// invalid value, exactly as Search would report it.
func ValidateOptions(opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.err
}

// DefaultOptions returns Options initialized with the puzzle defaults.
//
// Defaults:
//   - StepCost: 1
//   - TurnCost: 1000
//   - MaxCost:  math.MaxInt64 (explore all reachable states)
//   - Ctx:      context.Background()
//   - Logger:   zap.NewNop()
func DefaultOptions() Options {
	return Options{
		StepCost: DefaultStepCost,
		TurnCost: DefaultTurnCost,
		MaxCost:  math.MaxInt64,
		Ctx:      context.Background(),
		Logger:   zap.NewNop(),
	}
}
