// SPDX-License-Identifier: MIT

package strategy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/sim"
)

const methodBeatDegree = "BeatDegree"

// Player slots used in the head-to-head oracle call.
var (
	baselineLabel  = sim.PlayerLabel(0)
	candidateLabel = sim.PlayerLabel(1)
)

// errStop ends the remaining workers once a winner is recorded.
var errStop = errors.New("strategy: winner found")

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Outcome classifies how a search ended.
type Outcome int

const (
	// OutcomeFound means a candidate strictly outscored the baseline.
	OutcomeFound Outcome = iota + 1
	// OutcomeExhausted means the attempt budget ran out without a winner.
	OutcomeExhausted
	// OutcomePreconditionViolated means the search could not start
	// (candidate pool smaller than NumSeeds).
	OutcomePreconditionViolated
)

// String returns the lower-case outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomePreconditionViolated:
		return "precondition_violated"
	default:
		return "unknown"
	}
}

// SearchResult reports one BeatDegree search.
//
// Seeds is set only for OutcomeFound. Attempts counts oracle calls made by
// this search; a cache hit reports Cached and zero attempts.
type SearchResult struct {
	Outcome  Outcome
	Seeds    game.SeedSet
	Baseline game.SeedSet
	Attempts int64
	Cached   bool
}

// BeatDegree searches for a seed set that beats the HighDegree baseline in
// a head-to-head simulation.
//
// Candidates are drawn uniformly (NumSeeds distinct vertices) from the top
// PoolSize vertices by degree. Each candidate is played against the
// baseline by the oracle; the first one that scores strictly higher wins
// and is cached per game Name. Exhaustion is reported, never cached and
// never disguised as a win.
//
// With Workers > 1 trials run concurrently and the first accepted winner
// cancels the rest; with a stochastic oracle, runs may return different
// winners.
type BeatDegree struct {
	oracle   sim.Oracle
	opts     options
	rng      *lockedRand
	baseline *TopK
	cache    *seedCache
}

// NewBeatDegree returns a BeatDegree that plays candidates through oracle.
// Panics on a nil oracle.
func NewBeatDegree(oracle sim.Oracle, opts ...Option) *BeatDegree {
	if oracle == nil {
		panic("strategy: NewBeatDegree(nil oracle)")
	}
	o := newOptions(opts...)

	return &BeatDegree{
		oracle:   oracle,
		opts:     o,
		rng:      newLockedRand(o.seed),
		baseline: HighDegree(),
		cache:    newSeedCache(),
	}
}

// Name implements Strategy.
func (b *BeatDegree) Name() string { return methodBeatDegree }

// SelectSeeds implements Strategy by running Search.
//
// Errors:
//   - ErrPoolTooSmall when the candidate pool cannot hold NumSeeds vertices.
//   - ErrSearchExhausted when no winner is found within MaxAttempts.
//   - Oracle and context errors, wrapped.
func (b *BeatDegree) SelectSeeds(ctx context.Context, g *game.Game) (game.SeedSet, error) {
	res, err := b.Search(ctx, g)
	if err != nil {
		return nil, err
	}
	switch res.Outcome {
	case OutcomeFound:
		return res.Seeds, nil
	case OutcomeExhausted:
		return nil, fmt.Errorf("%s(%s): %d attempts: %w", methodBeatDegree, g.Name(), res.Attempts, ErrSearchExhausted)
	default:
		return nil, fmt.Errorf("%s(%s): pool=%d seeds=%d: %w",
			methodBeatDegree, g.Name(), b.poolSize(g), g.NumSeeds, ErrPoolTooSmall)
	}
}

// Search runs the adversarial search on g, or returns the cached winner.
// The returned error is non-nil only for oracle failures, cancellation or
// a baseline that cannot be ranked; budget exhaustion and pool
// preconditions are reported through SearchResult.Outcome.
func (b *BeatDegree) Search(ctx context.Context, g *game.Game) (SearchResult, error) {
	key := g.Name()
	for {
		if s, ok := b.cache.get(key); ok {
			return SearchResult{Outcome: OutcomeFound, Seeds: s, Cached: true}, nil
		}

		var ran bool
		v, err := b.cache.do(key, func() (interface{}, error) {
			ran = true
			if s, ok := b.cache.get(key); ok {
				return SearchResult{Outcome: OutcomeFound, Seeds: s, Cached: true}, nil
			}
			res, err := b.search(ctx, g)
			if err != nil {
				return res, err
			}
			searchOutcomes.WithLabelValues(res.Outcome.String()).Inc()
			if res.Outcome == OutcomeFound {
				b.cache.put(key, res.Seeds)
			}

			return res, nil
		})
		// A joined search that died with its leader's context is retried
		// under ours.
		if !ran && isContextErr(err) && ctx.Err() == nil {
			continue
		}
		res, _ := v.(SearchResult)
		res.Seeds = res.Seeds.Clone()

		return res, err
	}
}

// Invalidate drops the cached winner of g.
func (b *BeatDegree) Invalidate(g *game.Game) { b.cache.invalidate(g.Name()) }

// Reset drops every cached winner.
func (b *BeatDegree) Reset() { b.cache.reset() }

func (b *BeatDegree) poolSize(g *game.Game) int {
	return min(b.opts.poolSize, g.Graph.VertexCount())
}

func (b *BeatDegree) search(ctx context.Context, g *game.Game) (SearchResult, error) {
	log := b.opts.logger.With().Str("game", g.Name()).Logger()

	// 1) Precondition: the pool must be able to hold NumSeeds vertices.
	if b.poolSize(g) < g.NumSeeds {
		log.Warn().Int("pool", b.poolSize(g)).Int("seeds", g.NumSeeds).Msg("candidate pool too small")
		return SearchResult{Outcome: OutcomePreconditionViolated}, nil
	}

	// 2) Baseline and pool both come from the degree ranking.
	ranked, err := b.baseline.Rank(g.Graph)
	if err != nil {
		return SearchResult{}, fmt.Errorf("%s: %w", methodBeatDegree, err)
	}
	baseline := game.SeedSet(ranked[:g.NumSeeds])
	pool := ranked[:b.poolSize(g)]
	adj := g.Graph.Source()

	// 3) Trials. Workers share one attempt budget.
	var (
		attempts atomic.Int64
		mu       sync.Mutex
		winner   game.SeedSet
	)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < b.opts.workers; w++ {
		eg.Go(func() error {
			for {
				if err := egCtx.Err(); err != nil {
					return err
				}
				n := attempts.Add(1)
				if n > b.opts.maxAttempts {
					return nil
				}
				candidate, ok := drawDistinct(b.rng, pool, g.NumSeeds)
				if !ok {
					continue
				}
				res, err := b.oracle.Run(egCtx, adj, sim.Assignment{
					baselineLabel:  baseline,
					candidateLabel: candidate,
				})
				searchAttempts.Inc()
				if err != nil {
					return fmt.Errorf("%s: oracle: %w", methodBeatDegree, err)
				}
				if b.opts.progressEvery > 0 && n%b.opts.progressEvery == 0 {
					log.Debug().Int64("attempts", n).Msg("search progress")
				}
				if res[candidateLabel] > res[baselineLabel] {
					mu.Lock()
					if winner == nil {
						winner = candidate
					}
					mu.Unlock()
					return errStop
				}
			}
		})
	}
	err = eg.Wait()

	done := min(attempts.Load(), b.opts.maxAttempts)
	if winner != nil {
		log.Info().Int64("attempts", done).Strs("seeds", winner).Msg("beat degree baseline")
		return SearchResult{Outcome: OutcomeFound, Seeds: winner, Baseline: baseline, Attempts: done}, nil
	}
	if err != nil && !errors.Is(err, errStop) {
		return SearchResult{Baseline: baseline, Attempts: done}, err
	}
	log.Info().Int64("attempts", done).Msg("search budget exhausted")

	return SearchResult{Outcome: OutcomeExhausted, Baseline: baseline, Attempts: done}, nil
}
