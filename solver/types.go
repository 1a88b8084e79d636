package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
)

var (
	// ErrNilResult is returned when a reconstruction is asked of a nil search result.
	ErrNilResult = errors.New("solver: search result is nil")

	// ErrNilMaze is returned by SolveMaze for a nil maze.
	ErrNilMaze = errors.New("solver: maze is nil")

	// ErrBrokenPredecessors reports a state other than the start that the
	// backward walk reached but that has no recorded predecessor. The search
	// never produces such a table; seeing it means the result was corrupted
	// or the seeds were never scored.
	ErrBrokenPredecessors = errors.New("solver: predecessor chain does not reach the start")

	// ErrBadRenderMode is returned by ParseRenderMode for an unknown name.
	ErrBadRenderMode = errors.New("solver: unknown render mode")
)

// Answer is the outcome of Solve for one start state and goal cell.
type Answer struct {
	// Reachable is false when no orientation of the goal was reached.
	Reachable bool

	// MinCost is the cheapest arrival cost over the goal's orientations.
	MinCost int64

	// Cells lists every cell on at least one optimal route, row-major.
	Cells []gridgraph.Cell

	// Goals are the goal states tied at MinCost, in gridgraph.Directions order.
	Goals []gridgraph.State

	// States is the number of states the search scored.
	States int

	// Result is the underlying search outcome. It is nil when the goal was
	// rejected before searching (different open region).
	Result *dijkstra.Result
}

// CellCount returns the number of distinct cells on any optimal route.
func (a *Answer) CellCount() int { return len(a.Cells) }

// Path returns one optimal route from the start to the first tied goal,
// or nil when the goal is unreachable.
func (a *Answer) Path() []gridgraph.State {
	if !a.Reachable || a.Result == nil || len(a.Goals) == 0 {
		return nil
	}

	return OnePath(a.Result, a.Goals[0])
}

// Options configures Solve.
type Options struct {
	Ctx    context.Context
	Logger *zap.Logger

	// search is forwarded to dijkstra.Search.
	search []dijkstra.Option
}

// Option represents a functional option for Solve.
type Option func(*Options)

// WithCosts sets the step and turn costs of the search.
// Non-positive values surface from Solve as dijkstra.ErrBadCost.
func WithCosts(step, turn int64) Option {
	return func(o *Options) {
		o.search = append(o.search, dijkstra.WithStepCost(step), dijkstra.WithTurnCost(turn))
	}
}

// WithMaxCost bounds the search; goals costlier than max are reported unreachable.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		o.search = append(o.search, dijkstra.WithMaxCost(max))
	}
}

// WithLogger installs a logger for Solve and the underlying search. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
			o.search = append(o.search, dijkstra.WithLogger(l))
		}
	}
}

// WithContext sets a context honored by both the search and the backward walk.
// Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
			o.search = append(o.search, dijkstra.WithContext(ctx))
		}
	}
}

// WithSearchOptions forwards raw options to dijkstra.Search.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.search = append(o.search, opts...)
	}
}

// DefaultOptions returns Options with a background context and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// RenderMode selects what Render overlays on the grid.
type RenderMode uint8

const (
	// RenderNone draws only walls and floor.
	RenderNone RenderMode = iota
	// RenderCells marks every cell on any optimal route with 'O'.
	RenderCells
	// RenderPath marks one optimal route with heading glyphs, start and goal
	// cells included. A cell shows the heading it was first entered with.
	RenderPath
)

// String returns the mode name accepted by ParseRenderMode.
func (m RenderMode) String() string {
	switch m {
	case RenderNone:
		return "none"
	case RenderCells:
		return "cells"
	case RenderPath:
		return "path"
	default:
		return fmt.Sprintf("RenderMode(%d)", uint8(m))
	}
}

// ParseRenderMode parses "none", "cells" or "path" (case-insensitive).
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RenderNone, nil
	case "cells":
		return RenderCells, nil
	case "path":
		return RenderPath, nil
	default:
		return RenderNone, fmt.Errorf("%w: %q", ErrBadRenderMode, s)
	}
}
