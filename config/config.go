// Package config loads mazepath settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/dijkstra"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/solver"
)

// Environment variables consulted by Load.
const (
	EnvStepCost = "MAZEPATH_STEP_COST"
	EnvTurnCost = "MAZEPATH_TURN_COST"
	EnvDebug    = "MAZEPATH_DEBUG"
	EnvLogLevel = "MAZEPATH_LOG_LEVEL"
)

// Config holds all mazepath configuration.
type Config struct {
	// Move costs
	Costs CostsConfig `yaml:"costs"`

	// Search limits and start heading
	Search SearchConfig `yaml:"search"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Debug forces debug-level logging and the search trace.
	Debug bool `yaml:"debug"`

	// Workers bounds how many inputs are solved concurrently.
	Workers int `yaml:"workers"`

	// Render selects the overlay printed after each answer: none, cells, path.
	Render string `yaml:"render"`
}

// CostsConfig configures the move costs.
type CostsConfig struct {
	Step int64 `yaml:"step"`
	Turn int64 `yaml:"turn"`
}

// SearchConfig configures the search itself.
type SearchConfig struct {
	MaxCost        int64  `yaml:"max_cost"`        // 0 = unlimited
	StartDirection string `yaml:"start_direction"` // glyph or name, e.g. "east", ">"
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Costs: CostsConfig{
			Step: dijkstra.DefaultStepCost,
			Turn: dijkstra.DefaultTurnCost,
		},
		Search: SearchConfig{
			MaxCost:        0,
			StartDirection: "east",
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
		Workers: 4,
		Render:  "none",
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvStepCost); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvStepCost, err)
		}
		c.Costs.Step = n
	}
	if v := os.Getenv(EnvTurnCost); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTurnCost, err)
		}
		c.Costs.Turn = n
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Costs.Step <= 0 || c.Costs.Turn <= 0 {
		return fmt.Errorf("%w: step=%d turn=%d", dijkstra.ErrBadCost, c.Costs.Step, c.Costs.Turn)
	}
	if c.Search.MaxCost < 0 {
		return fmt.Errorf("%w: %d", dijkstra.ErrBadMaxCost, c.Search.MaxCost)
	}
	if _, err := c.Facing(); err != nil {
		return err
	}
	if _, err := solver.ParseRenderMode(c.Render); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers: %d (must be at least 1)", c.Workers)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	return nil
}

// Facing returns the configured start heading.
func (c *Config) Facing() (gridgraph.Direction, error) {
	return gridgraph.ParseDirection(c.Search.StartDirection)
}

// RenderMode returns the configured overlay, RenderNone if invalid.
func (c *Config) RenderMode() solver.RenderMode {
	m, _ := solver.ParseRenderMode(c.Render)
	return m
}

// LogLevel returns the effective logging level; Debug wins over Logging.Level.
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Logging.Level
}

// SolverOptions maps the cost and search settings onto solver options.
func (c *Config) SolverOptions() []solver.Option {
	opts := []solver.Option{solver.WithCosts(c.Costs.Step, c.Costs.Turn)}
	if c.Search.MaxCost > 0 {
		opts = append(opts, solver.WithMaxCost(c.Search.MaxCost))
	}
	return opts
}
