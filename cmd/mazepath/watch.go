package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/config"
)

// watchDebounce is how long an input must stay quiet before it is re-solved.
const watchDebounce = 150 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Solve inputs, then re-solve each one whenever it is written",
		Long: `Solves the inputs once like 'solve', then watches them. Directories are
watched for new or modified files; single files are re-solved when they
change. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.apply(cmd.Flags(), a.cfg); err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{DefaultInputDir}
			}

			return watchInputs(cmd.Context(), cmd.OutOrStdout(), args, a.cfg, a.logger, nil)
		},
	}

	cmd.Flags().Int64Var(&f.stepCost, "step-cost", 0, "Cost of one straight step")
	cmd.Flags().Int64Var(&f.turnCost, "turn-cost", 0, "Cost of one quarter turn")
	cmd.Flags().Int64Var(&f.maxCost, "max-cost", 0, "Ignore routes costlier than this (0 = unlimited)")
	cmd.Flags().StringVar(&f.facing, "facing", "", "Start heading")
	cmd.Flags().StringVar(&f.render, "render", "", "Overlay printed after each answer: none, cells, path")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "Inputs solved concurrently in the first pass")

	return cmd
}

// watchTargets maps what is watched to what is solved.
type watchTargets struct {
	dirs  map[string]bool // every file inside is an input
	files map[string]bool // only these files are inputs
}

func (t watchTargets) wants(name string) bool {
	name = filepath.Clean(name)
	return t.files[name] || t.dirs[filepath.Dir(name)]
}

// watchInputs solves args once, then re-solves inputs as they change until
// ctx is done. ready, if non-nil, is closed once the watcher is armed.
func watchInputs(ctx context.Context, w io.Writer, args []string, cfg *config.Config, logger *zap.Logger, ready chan<- struct{}) error {
	if ctx == nil {
		ctx = context.Background()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets := watchTargets{dirs: map[string]bool{}, files: map[string]bool{}}
	watched := map[string]bool{}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return fmt.Errorf("input %s: %w", arg, err)
		}
		dir := filepath.Clean(arg)
		if info.IsDir() {
			targets.dirs[dir] = true
		} else {
			targets.files[dir] = true
			// Editors often replace files; watch the parent to see the new inode.
			dir = filepath.Dir(dir)
		}
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	paths, err := discoverInputs(args)
	if err != nil {
		return err
	}
	if err := solveAll(ctx, w, paths, cfg, logger); err != nil {
		// a bad input should not stop the watch
		logger.Warn("initial pass", zap.Error(err))
	}
	logger.Info("watching", zap.Strings("paths", args))
	if ready != nil {
		close(ready)
	}

	pending := map[string]time.Time{}
	ticker := time.NewTicker(watchDebounce / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !targets.wants(event.Name) {
				continue
			}
			logger.Debug("input changed", zap.String("input", event.Name), zap.Stringer("op", event.Op))
			pending[filepath.Clean(event.Name)] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))

		case now := <-ticker.C:
			var due []string
			for name, t := range pending {
				if now.Sub(t) >= watchDebounce {
					due = append(due, name)
				}
			}
			sort.Strings(due)
			for _, name := range due {
				delete(pending, name)
				if info, err := os.Stat(name); err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
					continue
				}
				if err := writeOutcome(w, solveOne(ctx, name, cfg, logger), cfg.RenderMode()); err != nil {
					return err
				}
			}
		}
	}
}
