// Command mazepath solves oriented grid mazes: for each input it prints the
// minimal cost from S to E and the number of cells on any optimal route.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/logging"
)

// DefaultConfigPath is read when --config is not given; a missing file means defaults.
const DefaultConfigPath = "mazepath.yaml"

// app carries state shared between the root command and its subcommands.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	jsonLogs   bool

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. Each call returns independent state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mazepath",
		Short: "Minimal-cost and all-optimal-cell solver for oriented grid mazes",
		Long: `mazepath searches a maze of '#' walls with a start 'S' and an end 'E'.
Moving one cell straight ahead costs the step cost; turning 90 degrees in
place costs the turn cost. For every input it prints the minimal cost and
the number of cells lying on at least one route of that cost.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", DefaultConfigPath, "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging (search trace)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Debug = true
	}
	if a.jsonLogs {
		cfg.Logging.JSON = true
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel(), JSON: cfg.Logging.JSON})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
