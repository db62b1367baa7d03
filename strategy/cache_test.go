package strategy_test

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pandemaniac/builder"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/sim"
	"github.com/katalvlaran/pandemaniac/strategy"
)

// readGame parses the graph built by cons as if it were the file name.
func readGame(t *testing.T, name string, opts []builder.BuilderOption, cons ...builder.Constructor) *game.Game {
	t.Helper()
	adj, err := builder.BuildAdjacency(opts, cons...)
	require.NoError(t, err)
	data, err := json.Marshal(adj)
	require.NoError(t, err)
	g, err := game.Read(name, bytes.NewReader(data))
	require.NoError(t, err)

	return g
}

// Graph files share the trailing id across seed counts and player counts,
// so caches must tell "2.5.1", "2.10.1" and "3.5.1" apart.
func TestCachedStrategies_SharedIDAcrossGames(t *testing.T) {
	ba := []builder.BuilderOption{builder.WithSeed(1)}
	games := []*game.Game{
		readGame(t, "2.5.1.json", ba, builder.BarabasiAlbert(40, 2)),
		readGame(t, "2.10.1.json", ba, builder.BarabasiAlbert(40, 2)),
		readGame(t, "3.5.1.json", nil, builder.Complete(12)),
	}
	for _, g := range games {
		require.Equal(t, "1", g.ID)
	}

	ctx := context.Background()
	cached := []strategy.Strategy{
		strategy.NewCompositeRank(),
		strategy.NewBeatDegree(alwaysWin, strategy.WithSeed(2)),
	}
	for _, s := range cached {
		// Twice over, so the second pass is served from the cache.
		for pass := 0; pass < 2; pass++ {
			for _, g := range games {
				got, err := s.SelectSeeds(ctx, g)
				require.NoError(t, err, "%s %s", s.Name(), g.Name())
				assert.Len(t, got, g.NumSeeds, "%s %s", s.Name(), g.Name())
				assert.NoError(t, got.Validate(g), "%s %s", s.Name(), g.Name())
			}
		}
	}
}

func TestBeatDegree_CancelledLeaderDoesNotFailJoiner(t *testing.T) {
	g := scaleFree(t, 4)

	var (
		released atomic.Bool
		once     sync.Once
		started  = make(chan struct{})
	)
	// Until released, every call blocks on its context; afterwards it wins.
	oracle := sim.OracleFunc(func(ctx context.Context, _ core.Adjacency, _ sim.Assignment) (sim.Result, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !released.Load() {
			once.Do(func() { close(started) })
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return sim.Result{baseline: 0, candidate: 1}, nil
	})
	bd := strategy.NewBeatDegree(oracle, strategy.WithWorkers(1), strategy.WithSeed(5))

	leaderCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	leaderErr := make(chan error, 1)
	go func() {
		_, err := bd.Search(leaderCtx, g)
		leaderErr <- err
	}()
	<-started

	type outcome struct {
		res strategy.SearchResult
		err error
	}
	joiner := make(chan outcome, 1)
	go func() {
		res, err := bd.Search(context.Background(), g)
		joiner <- outcome{res, err}
	}()
	// Let the second caller join the in-flight search.
	time.Sleep(50 * time.Millisecond)

	released.Store(true)
	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	select {
	case got := <-joiner:
		require.NoError(t, got.err)
		assert.Equal(t, strategy.OutcomeFound, got.res.Outcome)
		assert.NoError(t, got.res.Seeds.Validate(g))
	case <-time.After(5 * time.Second):
		t.Fatal("joined caller never finished")
	}
}

func TestBeatDegree_FailureIsNotCached(t *testing.T) {
	g := scaleFree(t, 4)
	var down atomic.Bool
	down.Store(true)
	oracle := sim.OracleFunc(func(ctx context.Context, adj core.Adjacency, a sim.Assignment) (sim.Result, error) {
		if down.Load() {
			return failing.Run(ctx, adj, a)
		}
		return alwaysWin.Run(ctx, adj, a)
	})
	bd := strategy.NewBeatDegree(oracle, strategy.WithSeed(5))

	_, err := bd.Search(context.Background(), g)
	require.ErrorIs(t, err, errOracleDown)

	down.Store(false)
	res, err := bd.Search(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, strategy.OutcomeFound, res.Outcome)
	assert.False(t, res.Cached)
}
