package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/solver"
)

// DefaultInputDir is solved when no path is given.
const DefaultInputDir = "input"

// solveFlags are the per-run overrides of the configuration.
type solveFlags struct {
	stepCost int64
	turnCost int64
	maxCost  int64
	facing   string
	render   string
	workers  int
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [paths...]",
		Short: "Solve maze files, or every non-empty file in the given directories",
		Long: `Solves each input and prints one line per input:

  <name>  ( <minimal cost> , <optimal cells> ) in <elapsed>

Directories expand to their non-empty regular files in name order. With no
arguments the ./input directory is solved. Inputs are solved concurrently
(--workers) and reported in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.apply(cmd.Flags(), a.cfg); err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			paths, err := discoverInputs(args)
			if err != nil {
				return err
			}

			return solveAll(cmd.Context(), cmd.OutOrStdout(), paths, a.cfg, a.logger)
		},
	}

	cmd.Flags().Int64Var(&f.stepCost, "step-cost", 0, "Cost of one straight step (default from config: 1)")
	cmd.Flags().Int64Var(&f.turnCost, "turn-cost", 0, "Cost of one quarter turn (default from config: 1000)")
	cmd.Flags().Int64Var(&f.maxCost, "max-cost", 0, "Ignore routes costlier than this (0 = unlimited)")
	cmd.Flags().StringVar(&f.facing, "facing", "", "Start heading: up, down, left, right or ^ v < > (default east)")
	cmd.Flags().StringVar(&f.render, "render", "", "Overlay printed after each answer: none, cells, path")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "Inputs solved concurrently")

	return cmd
}

// apply copies every flag the user set onto cfg.
func (f *solveFlags) apply(flags *pflag.FlagSet, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("configuration not loaded")
	}
	if flags.Changed("step-cost") {
		cfg.Costs.Step = f.stepCost
	}
	if flags.Changed("turn-cost") {
		cfg.Costs.Turn = f.turnCost
	}
	if flags.Changed("max-cost") {
		cfg.Search.MaxCost = f.maxCost
	}
	if flags.Changed("facing") {
		cfg.Search.StartDirection = f.facing
	}
	if flags.Changed("render") {
		cfg.Render = f.render
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}

	return nil
}

// discoverInputs expands directories to their non-empty regular files,
// sorted by name. Files named directly are kept as given.
func discoverInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{DefaultInputDir}
	}

	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", arg, err)
		}
		var files []string
		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			fi, err := e.Info()
			if err != nil || fi.Size() == 0 {
				continue
			}
			files = append(files, filepath.Join(arg, e.Name()))
		}
		sort.Strings(files)
		out = append(out, files...)
	}

	return out, nil
}

// outcome is one solved (or failed) input.
type outcome struct {
	name    string
	maze    *gridgraph.Maze
	answer  *solver.Answer
	elapsed time.Duration
	err     error
}

// solveOne parses and solves a single input file.
func solveOne(ctx context.Context, path string, cfg *config.Config, logger *zap.Logger) outcome {
	o := outcome{name: path}

	facing, err := cfg.Facing()
	if err != nil {
		o.err = err
		return o
	}

	file, err := os.Open(path)
	if err != nil {
		o.err = err
		return o
	}
	defer file.Close()

	o.maze, err = gridgraph.ParseMaze(file)
	if err != nil {
		o.err = fmt.Errorf("%s: %w", path, err)
		return o
	}

	runID := uuid.NewString()[:8]
	log := logger.With(zap.String("run", runID), zap.String("input", path))
	log.Debug("solving",
		zap.Int("rows", o.maze.Grid.Rows),
		zap.Int("cols", o.maze.Grid.Cols),
		zap.Stringer("start", o.maze.Start),
		zap.Stringer("end", o.maze.End),
	)

	opts := append(cfg.SolverOptions(), solver.WithContext(ctx))
	if cfg.Debug {
		opts = append(opts, solver.WithLogger(log))
	}

	began := time.Now()
	o.answer, err = solver.SolveMaze(o.maze, facing, opts...)
	o.elapsed = time.Since(began)
	if err != nil {
		o.err = fmt.Errorf("%s: %w", path, err)
		return o
	}

	if !o.answer.Reachable {
		log.Warn("end is unreachable from start")
	}
	log.Info("solved",
		zap.Int64("cost", o.answer.MinCost),
		zap.Int("cells", o.answer.CellCount()),
		zap.Duration("elapsed", o.elapsed),
	)

	return o
}

// solveAll solves paths with at most cfg.Workers concurrent searches and
// writes the report in input order. Per-input failures are reported inline
// and summarized in the returned error.
func solveAll(ctx context.Context, w io.Writer, paths []string, cfg *config.Config, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]outcome, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			results[i] = solveOne(egCtx, p, cfg, logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if err := writeOutcome(w, r, cfg.RenderMode()); err != nil {
			return err
		}
		if r.err != nil {
			failed++
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(paths))
	}

	return nil
}

// writeOutcome prints one report line and, if requested, the overlay.
func writeOutcome(w io.Writer, r outcome, mode solver.RenderMode) error {
	if r.err != nil {
		_, err := fmt.Fprintf(w, "%-25s error: %v\n", r.name, r.err)
		return err
	}

	pair := fmt.Sprintf("( %d , %d )", r.answer.MinCost, r.answer.CellCount())
	if _, err := fmt.Fprintf(w, "%-25s %25s in %s\n", r.name, pair, formatDuration(r.elapsed)); err != nil {
		return err
	}
	if mode == solver.RenderNone {
		return nil
	}

	_, err := io.WriteString(w, colorize(w, solver.Render(r.maze.Grid, r.answer, mode)))
	return err
}

// formatDuration prints d with millisecond, microsecond or nanosecond
// precision under the largest non-zero unit: "1.005 s", "3.120 ms", "0.870 micros".
func formatDuration(d time.Duration) string {
	secs := int64(d / time.Second)
	millis := int64(d/time.Millisecond) % 1000
	if secs > 0 {
		return fmt.Sprintf("%d.%03d s", secs, millis)
	}
	micros := int64(d/time.Microsecond) % 1000
	if millis > 0 {
		return fmt.Sprintf("%d.%03d ms", millis, micros)
	}
	nanos := int64(d) % 1000

	return fmt.Sprintf("%d.%03d micros", micros, nanos)
}
