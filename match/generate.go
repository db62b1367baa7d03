// SPDX-License-Identifier: MIT

package match

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/pandemaniac/builder"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
)

// GraphSource returns the graph of the i-th generated game.
type GraphSource func(i int) (*core.Graph, error)

// BuilderSource builds each graph from cons, seeding game i with seed+i so
// random generators yield a different but reproducible graph per game.
func BuilderSource(seed int64, cons ...builder.Constructor) GraphSource {
	return func(i int) (*core.Graph, error) {
		return builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed + int64(i))}, cons...)
	}
}

// GenerateGames builds n games from source. Every game gets a fresh UUID.
//
// Errors:
//   - ErrNoGames when n < 1.
//   - source errors and game.ErrInvalidGame, wrapped.
func GenerateGames(n, players, seeds int, source GraphSource) ([]*game.Game, error) {
	if n < 1 {
		return nil, fmt.Errorf("GenerateGames: n=%d: %w", n, ErrNoGames)
	}
	games := make([]*game.Game, 0, n)
	for i := 0; i < n; i++ {
		g, err := source(i)
		if err != nil {
			return nil, fmt.Errorf("GenerateGames: game %d: %w", i, err)
		}
		gm, err := game.New(uuid.NewString(), g, players, seeds)
		if err != nil {
			return nil, fmt.Errorf("GenerateGames: game %d: %w", i, err)
		}
		games = append(games, gm)
	}

	return games, nil
}
