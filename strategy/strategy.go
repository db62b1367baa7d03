// SPDX-License-Identifier: MIT

package strategy

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pandemaniac/game"
)

// Strategy chooses a seed set for a game.
type Strategy interface {
	// Name is a short human-readable label used in logs and tallies.
	Name() string
	// SelectSeeds returns exactly g.NumSeeds distinct vertices of g.Graph.
	SelectSeeds(ctx context.Context, g *game.Game) (game.SeedSet, error)
}

// checkSeedCount fails with ErrTooManySeeds when g asks for more seeds than
// it has vertices.
func checkSeedCount(method string, g *game.Game) error {
	if n := g.Graph.VertexCount(); g.NumSeeds > n {
		return fmt.Errorf("%s(%s): seeds=%d > vertices=%d: %w", method, g.Name(), g.NumSeeds, n, ErrTooManySeeds)
	}

	return nil
}
