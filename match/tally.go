// SPDX-License-Identifier: MIT

package match

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/sim"
	"github.com/katalvlaran/pandemaniac/strategy"
)

// headToHeadPlayers is the player count Tally requires of every game.
const headToHeadPlayers = 2

// Record is one strategy's accumulated tournament result.
type Record struct {
	Name   string
	Wins   int
	Losses int
	Draws  int
	// Score is the sum of oracle scores over every match played.
	Score int
}

// Standings is the outcome of a Tally. Records follow the order of the
// strategies passed to Tally.
type Standings struct {
	Records []Record
	Matches int
}

// Ranked returns the records ordered by wins, then score, descending, then
// by name.
func (s *Standings) Ranked() []Record {
	out := make([]Record, len(s.Records))
	copy(out, s.Records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Name < b.Name
	})

	return out
}

// pairing is one head-to-head match to play.
type pairing struct {
	first, second int
	game          *game.Game
}

// Tally plays every unordered pair of strategies on every game. The
// lower-indexed strategy of a pair plays as strategy0. A strictly higher
// score wins; equal scores are a draw for both.
//
// Matches run on up to Workers goroutines; strategies must therefore be
// safe for concurrent use when Workers > 1 (every strategy in package
// strategy is).
//
// Errors:
//   - ErrPlayerCount when fewer than two strategies are given or a game is
//     not a two-player game.
//   - ErrNoGames when games is empty.
//   - the first Play error; remaining matches are cancelled.
func (o *Orchestrator) Tally(ctx context.Context, games []*game.Game, strategies []strategy.Strategy) (*Standings, error) {
	if len(strategies) < headToHeadPlayers {
		return nil, fmt.Errorf("Tally: %d strategies: %w", len(strategies), ErrPlayerCount)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("Tally: %w", ErrNoGames)
	}
	for _, g := range games {
		if g.NumPlayers != headToHeadPlayers {
			return nil, fmt.Errorf("Tally: game %s has %d players: %w", g.Name(), g.NumPlayers, ErrPlayerCount)
		}
	}

	var plan []pairing
	for i := 0; i < len(strategies); i++ {
		for j := i + 1; j < len(strategies); j++ {
			for _, g := range games {
				plan = append(plan, pairing{first: i, second: j, game: g})
			}
		}
	}

	st := &Standings{Records: make([]Record, len(strategies))}
	for i, s := range strategies {
		st.Records[i].Name = s.Name()
	}

	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for _, p := range plan {
		p := p
		eg.Go(func() error {
			res, err := o.Play(egCtx, p.game, []strategy.Strategy{strategies[p.first], strategies[p.second]})
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			st.record(p, res)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("Tally: %w", err)
	}

	o.logger.Info().Int("matches", st.Matches).Int("games", len(games)).Int("strategies", len(strategies)).Msg("tally complete")

	return st, nil
}

// record folds one match result into the standings.
func (s *Standings) record(p pairing, res sim.Result) {
	first, second := &s.Records[p.first], &s.Records[p.second]
	first.Score += res[sim.PlayerLabel(0)]
	second.Score += res[sim.PlayerLabel(1)]
	s.Matches++

	switch Winner(res) {
	case sim.PlayerLabel(0):
		first.Wins++
		second.Losses++
	case sim.PlayerLabel(1):
		second.Wins++
		first.Losses++
	default:
		first.Draws++
		second.Draws++
	}
}
