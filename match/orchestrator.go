// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/sim"
	"github.com/katalvlaran/pandemaniac/strategy"
)

// Orchestrator plays games through a simulation oracle.
type Orchestrator struct {
	oracle  sim.Oracle
	logger  zerolog.Logger
	workers int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithWorkers bounds the number of matches Tally plays concurrently;
// values < 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// New returns an Orchestrator backed by oracle. Panics on a nil oracle.
func New(oracle sim.Oracle, opts ...Option) *Orchestrator {
	if oracle == nil {
		panic("match: New(nil oracle)")
	}
	o := &Orchestrator{oracle: oracle, logger: zerolog.Nop(), workers: 1}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Play runs one match of g. Player i is labelled sim.PlayerLabel(i) and
// seeded by strategies[i].
//
// Errors:
//   - ErrPlayerCount when len(strategies) != g.NumPlayers.
//   - ErrSeedCount when a strategy returns the wrong number of seeds.
//   - game.ErrDuplicateSeed / game.ErrUnknownSeed for invalid seeds.
//   - strategy and oracle errors, wrapped.
func (o *Orchestrator) Play(ctx context.Context, g *game.Game, strategies []strategy.Strategy) (sim.Result, error) {
	if len(strategies) != g.NumPlayers {
		return nil, fmt.Errorf("Play(%s): %d strategies for %d players: %w",
			g.Name(), len(strategies), g.NumPlayers, ErrPlayerCount)
	}

	assignment := make(sim.Assignment, len(strategies))
	for i, s := range strategies {
		seeds, err := s.SelectSeeds(ctx, g)
		if err != nil {
			return nil, fmt.Errorf("Play(%s): %s: %w", g.Name(), s.Name(), err)
		}
		if len(seeds) != g.NumSeeds {
			return nil, fmt.Errorf("Play(%s): %s returned %d seeds, want %d: %w",
				g.Name(), s.Name(), len(seeds), g.NumSeeds, ErrSeedCount)
		}
		if err := seeds.Validate(g); err != nil {
			return nil, fmt.Errorf("Play: %s: %w", s.Name(), err)
		}
		assignment[sim.PlayerLabel(i)] = seeds
	}

	res, err := o.oracle.Run(ctx, g.Graph.Source(), assignment)
	if err != nil {
		return nil, fmt.Errorf("Play(%s): oracle: %w", g.Name(), err)
	}
	o.logger.Debug().Str("game", g.Name()).Interface("result", res).Msg("match played")

	return res, nil
}

// Winner returns the label with the strictly highest score, or "" when the
// top score is shared or res is empty.
func Winner(res sim.Result) string {
	var (
		best  string
		score int
		tied  bool
	)
	for label, s := range res {
		switch {
		case best == "" || s > score:
			best, score, tied = label, s, false
		case s == score:
			tied = true
		}
	}
	if tied {
		return ""
	}

	return best
}
