// SPDX-License-Identifier: MIT

package strategy

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pandemaniac/game"
)

const methodCompositeRank = "CompositeRank"

// CompositeRank is a two-stage filter: rank every vertex by a cheap coarse
// metric (degree by default), keep the top PoolFactor·NumSeeds as a pool,
// re-rank the pool by an expensive fine metric (closeness by default) and
// return its top NumSeeds. Results are cached per game Name.
type CompositeRank struct {
	opts  options
	cache *seedCache
}

// NewCompositeRank returns a CompositeRank configured by opts.
func NewCompositeRank(opts ...Option) *CompositeRank {
	return &CompositeRank{opts: newOptions(opts...), cache: newSeedCache()}
}

// Name implements Strategy.
func (c *CompositeRank) Name() string { return methodCompositeRank }

// SelectSeeds implements Strategy.
func (c *CompositeRank) SelectSeeds(ctx context.Context, g *game.Game) (game.SeedSet, error) {
	key := g.Name()
	if s, ok := c.cache.get(key); ok {
		return s, nil
	}
	if err := checkSeedCount(methodCompositeRank, g); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompositeRank, err)
	}

	v, err := c.cache.do(key, func() (interface{}, error) {
		if s, ok := c.cache.get(key); ok {
			return s, nil
		}
		s, err := c.compute(g)
		if err != nil {
			return nil, err
		}
		c.cache.put(key, s)

		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(game.SeedSet).Clone(), nil
}

func (c *CompositeRank) compute(g *game.Game) (game.SeedSet, error) {
	ids := g.Graph.Vertices()

	coarse, err := c.opts.coarse(g.Graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodCompositeRank, c.opts.coarseName, err)
	}
	pool := rankByScores(ids, coarse)
	if size := c.opts.poolFactor * g.NumSeeds; size < len(pool) {
		pool = pool[:size]
	}

	fine, err := c.opts.fine(g.Graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodCompositeRank, c.opts.fineName, err)
	}
	ranked := rankByScores(pool, fine)

	c.opts.logger.Debug().
		Str("game", g.Name()).
		Str("coarse", c.opts.coarseName).
		Str("fine", c.opts.fineName).
		Int("pool", len(pool)).
		Msg("composite rank computed")

	return game.SeedSet(ranked[:g.NumSeeds]), nil
}

// Invalidate drops the cached seeds of g.
func (c *CompositeRank) Invalidate(g *game.Game) { c.cache.invalidate(g.Name()) }

// Reset drops every cached seed set.
func (c *CompositeRank) Reset() { c.cache.reset() }
