// SPDX-License-Identifier: MIT

package strategy

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pandemaniac/game"
)

const methodRandom = "Random"

// Random picks NumSeeds vertices uniformly at random. Safe for concurrent use.
type Random struct {
	rng *lockedRand
}

// NewRandom returns a Random strategy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: newLockedRand(seed)}
}

// Name implements Strategy.
func (r *Random) Name() string { return methodRandom }

// SelectSeeds implements Strategy.
//
// Errors:
//   - ErrTooManySeeds when NumSeeds exceeds the vertex count.
//   - ErrDrawBudget in the (vanishingly unlikely) case the draw cap is hit.
func (r *Random) SelectSeeds(ctx context.Context, g *game.Game) (game.SeedSet, error) {
	if err := checkSeedCount(methodRandom, g); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, err)
	}
	seeds, ok := drawDistinct(r.rng, g.Graph.Vertices(), g.NumSeeds)
	if !ok {
		return nil, fmt.Errorf("%s(%s): %w", methodRandom, g.Name(), ErrDrawBudget)
	}

	return seeds, nil
}
