// SPDX-License-Identifier: MIT

// Package config holds the tunable settings of the game tooling in a viper
// instance and turns them into configured strategies, orchestrators and a
// zerolog logger.
//
// Every key has a default; values may come from a config file
// (LoadFromFile), from PANDEMANIAC_* environment variables
// (search.max_attempts → PANDEMANIAC_SEARCH_MAX_ATTEMPTS) or from Set.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/match"
	"github.com/katalvlaran/pandemaniac/metrics"
	"github.com/katalvlaran/pandemaniac/sim"
	"github.com/katalvlaran/pandemaniac/strategy"
)

const (
	envPrefix   = "PANDEMANIAC"
	serviceName = "pandemaniac"
)

// Strategy names understood by Strategy and Lineup. Registered metric
// names (see metrics.Names) are accepted too and yield a TopK strategy.
const (
	StrategyRandom        = "random"
	StrategyHighDegree    = "highdegree"
	StrategyTwinAttack    = "twinattack"
	StrategyCompositeRank = "composite"
	StrategyBeatDegree    = "beatdegree"
)

// ErrUnknownStrategy indicates a strategy name that is neither built in nor
// a registered metric.
var ErrUnknownStrategy = errors.New("config: unknown strategy")

// Config manages settings using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults.
func NewConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Adversarial search
	v.SetDefault("search.max_attempts", strategy.DefaultMaxAttempts)
	v.SetDefault("search.pool_size", strategy.DefaultPoolSize)
	v.SetDefault("search.workers", strategy.DefaultWorkers)
	v.SetDefault("search.seed", time.Now().UnixNano())
	v.SetDefault("search.progress_every", strategy.DefaultProgressEvery)

	// Strategies
	v.SetDefault("strategy.twin_skip", 0)
	v.SetDefault("strategy.pool_factor", strategy.DefaultPoolFactor)
	v.SetDefault("strategy.fine_metric", metrics.NameCloseness)
	v.SetDefault("strategy.random_seed", time.Now().UnixNano())

	// Tournament
	v.SetDefault("tally.workers", 1)
	v.SetDefault("tally.strategies", []string{StrategyHighDegree, StrategyTwinAttack})

	// Output
	v.SetDefault("output.rounds", 50)
	v.SetDefault("output.dir", "output_files")

	// Logging
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("LoadFromFile(%q): %w", path, err)
	}

	return nil
}

// Getters
func (c *Config) MaxAttempts() int64 { return c.v.GetInt64("search.max_attempts") }
func (c *Config) PoolSize() int { return c.v.GetInt("search.pool_size") }
func (c *Config) SearchWorkers() int { return c.v.GetInt("search.workers") }
func (c *Config) SearchSeed() int64 { return c.v.GetInt64("search.seed") }
func (c *Config) ProgressEvery() int64 { return c.v.GetInt64("search.progress_every") }

func (c *Config) TwinSkip() int { return c.v.GetInt("strategy.twin_skip") }
func (c *Config) PoolFactor() int { return c.v.GetInt("strategy.pool_factor") }
func (c *Config) FineMetric() string { return c.v.GetString("strategy.fine_metric") }
func (c *Config) RandomSeed() int64 { return c.v.GetInt64("strategy.random_seed") }
func (c *Config) TallyWorkers() int { return c.v.GetInt("tally.workers") }
func (c *Config) Lineup() []string { return c.v.GetStringSlice("tally.strategies") }
func (c *Config) OutputRounds() int { return c.v.GetInt("output.rounds") }
func (c *Config) OutputDir() string { return c.v.GetString("output.dir") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// CreateLogger creates a zerolog logger based on config.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", serviceName).Logger()
}

// Orchestrator returns a match.Orchestrator with the configured worker count.
func (c *Config) Orchestrator(oracle sim.Oracle, logger zerolog.Logger) *match.Orchestrator {
	return match.New(oracle, match.WithWorkers(c.TallyWorkers()), match.WithLogger(logger))
}

// Strategy builds the named strategy from the configuration. oracle is only
// used by StrategyBeatDegree.
//
// Errors:
//   - ErrUnknownStrategy for an unrecognized name.
//   - metrics.ErrUnknownMetric when strategy.fine_metric is not registered.
//   - sim.ErrNilOracle when StrategyBeatDegree is requested without an oracle.
func (c *Config) Strategy(name string, oracle sim.Oracle, logger zerolog.Logger) (strategy.Strategy, error) {
	switch strings.ToLower(name) {
	case StrategyRandom:
		return strategy.NewRandom(c.RandomSeed()), nil
	case StrategyHighDegree:
		return strategy.HighDegree(), nil
	case StrategyTwinAttack:
		return strategy.NewTwinAttack(c.TwinSkip()), nil
	case StrategyCompositeRank:
		fine, err := metrics.Lookup(c.FineMetric())
		if err != nil {
			return nil, fmt.Errorf("Strategy(%q): %w", name, err)
		}
		return strategy.NewCompositeRank(
			strategy.WithFineMetric(c.FineMetric(), fine),
			strategy.WithPoolFactor(max(c.PoolFactor(), 1)),
			strategy.WithLogger(logger),
		), nil
	case StrategyBeatDegree:
		if oracle == nil {
			return nil, fmt.Errorf("Strategy(%q): %w", name, sim.ErrNilOracle)
		}
		return strategy.NewBeatDegree(oracle,
			strategy.WithPoolSize(max(c.PoolSize(), 1)),
			strategy.WithMaxAttempts(max(c.MaxAttempts(), 1)),
			strategy.WithWorkers(c.SearchWorkers()),
			strategy.WithSeed(c.SearchSeed()),
			strategy.WithProgressEvery(c.ProgressEvery()),
			strategy.WithLogger(logger),
		), nil
	}

	top, err := strategy.ByMetric(strings.ToLower(name))
	if err != nil {
		return nil, fmt.Errorf("Strategy(%q): %w", name, ErrUnknownStrategy)
	}

	return top, nil
}

// Strategies builds every strategy listed under tally.strategies, in order.
func (c *Config) Strategies(oracle sim.Oracle, logger zerolog.Logger) ([]strategy.Strategy, error) {
	names := c.Lineup()
	out := make([]strategy.Strategy, 0, len(names))
	for _, name := range names {
		s, err := c.Strategy(name, oracle, logger)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// WriteOutput writes the configured number of rounds of sel's choices for g
// under output.dir, creating the directory if needed.
func (c *Config) WriteOutput(ctx context.Context, g *game.Game, sel game.Selector) (string, error) {
	if err := os.MkdirAll(c.OutputDir(), 0o755); err != nil {
		return "", fmt.Errorf("WriteOutput: %w", err)
	}

	return game.WriteRoundsFile(ctx, c.OutputDir(), g, sel, c.OutputRounds())
}
