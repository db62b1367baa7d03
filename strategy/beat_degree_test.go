package strategy_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/sim"
	"github.com/katalvlaran/pandemaniac/strategy"
)

type BeatDegreeSuite struct {
	suite.Suite
	ctx  context.Context
	game *game.Game
}

func (s *BeatDegreeSuite) SetupTest() {
	s.ctx = context.Background()
	s.game = scaleFree(s.T(), 4)
}

func (s *BeatDegreeSuite) TestFirstAttemptWinIsCached() {
	oracle := sim.NewCounted(alwaysWin)
	bd := strategy.NewBeatDegree(oracle, strategy.WithSeed(1))

	res, err := bd.Search(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal(strategy.OutcomeFound, res.Outcome)
	s.EqualValues(1, res.Attempts)
	s.False(res.Cached)
	s.NoError(res.Seeds.Validate(s.game))
	s.EqualValues(1, oracle.Calls())

	again, err := bd.SelectSeeds(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal(res.Seeds, again)
	s.EqualValues(1, oracle.Calls(), "cached result must not re-invoke the oracle")

	bd.Invalidate(s.game)
	_, err = bd.SelectSeeds(s.ctx, s.game)
	s.Require().NoError(err)
	s.EqualValues(2, oracle.Calls())
}

func (s *BeatDegreeSuite) TestBaselineIsHighDegree() {
	want, err := strategy.HighDegree().SelectSeeds(s.ctx, s.game)
	s.Require().NoError(err)

	var got game.SeedSet
	oracle := sim.OracleFunc(func(_ context.Context, adj core.Adjacency, a sim.Assignment) (sim.Result, error) {
		got = a[baseline]
		s.Equal(s.game.Graph.Source(), adj)
		return sim.Result{baseline: 0, candidate: 1}, nil
	})
	res, err := strategy.NewBeatDegree(oracle).Search(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal(want, got)
	s.Equal(want, res.Baseline)
}

func (s *BeatDegreeSuite) TestExhaustedIsNotCached() {
	oracle := sim.NewCounted(neverWin)
	bd := strategy.NewBeatDegree(oracle, strategy.WithMaxAttempts(50))

	res, err := bd.Search(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal(strategy.OutcomeExhausted, res.Outcome)
	s.Nil(res.Seeds)
	s.EqualValues(50, res.Attempts)
	s.EqualValues(50, oracle.Calls())

	_, err = bd.SelectSeeds(s.ctx, s.game)
	s.ErrorIs(err, strategy.ErrSearchExhausted)
	s.EqualValues(100, oracle.Calls(), "exhaustion must not be cached")
}

func (s *BeatDegreeSuite) TestPoolTooSmall() {
	oracle := sim.NewCounted(alwaysWin)
	bd := strategy.NewBeatDegree(oracle, strategy.WithPoolSize(3))

	res, err := bd.Search(s.ctx, s.game)
	s.Require().NoError(err)
	s.Equal(strategy.OutcomePreconditionViolated, res.Outcome)

	_, err = bd.SelectSeeds(s.ctx, s.game)
	s.ErrorIs(err, strategy.ErrPoolTooSmall)
	s.Zero(oracle.Calls())
}

func (s *BeatDegreeSuite) TestOracleErrorAborts() {
	_, err := strategy.NewBeatDegree(failing).SelectSeeds(s.ctx, s.game)
	s.ErrorIs(err, errOracleDown)
}

func (s *BeatDegreeSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := strategy.NewBeatDegree(neverWin).SelectSeeds(ctx, s.game)
	s.ErrorIs(err, context.Canceled)
}

func (s *BeatDegreeSuite) TestParallelWorkersFindWinner() {
	// The strongest hub is always in the pool, so some draw includes it.
	ranked, err := strategy.HighDegree().Rank(s.game.Graph)
	s.Require().NoError(err)
	hub := ranked[0]

	bd := strategy.NewBeatDegree(winWith(hub), strategy.WithWorkers(4), strategy.WithSeed(9))
	seeds, err := bd.SelectSeeds(s.ctx, s.game)
	s.Require().NoError(err)
	s.Contains(seeds, hub)
	s.NoError(seeds.Validate(s.game))
}

func (s *BeatDegreeSuite) TestConcurrentCallersShareOneSearch() {
	oracle := sim.NewCounted(alwaysWin)
	bd := strategy.NewBeatDegree(oracle)

	var wg sync.WaitGroup
	results := make([]game.SeedSet, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seeds, err := bd.SelectSeeds(s.ctx, s.game)
			s.NoError(err)
			results[i] = seeds
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		s.Equal(results[0], r)
	}
	s.EqualValues(1, oracle.Calls())
}

func (s *BeatDegreeSuite) TestOutcomeString() {
	s.Equal("found", strategy.OutcomeFound.String())
	s.Equal("exhausted", strategy.OutcomeExhausted.String())
	s.Equal("precondition_violated", strategy.OutcomePreconditionViolated.String())
	s.Equal("unknown", strategy.Outcome(0).String())
}

func TestBeatDegreeSuite(t *testing.T) {
	suite.Run(t, new(BeatDegreeSuite))
}
