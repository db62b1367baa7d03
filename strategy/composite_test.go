package strategy_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/metrics"
	"github.com/katalvlaran/pandemaniac/strategy"
)

func TestCompositeRank_CachesPerGame(t *testing.T) {
	var calls atomic.Int64
	fine := func(g *core.Graph) (map[string]float64, error) {
		calls.Add(1)
		return metrics.Closeness(g)
	}
	cr := strategy.NewCompositeRank(
		strategy.WithFineMetric("closeness", fine),
		strategy.WithPoolFactor(3),
	)
	g := scaleFree(t, 5)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seeds, err := cr.SelectSeeds(ctx, g)
			assert.NoError(t, err)
			assert.NoError(t, seeds.Validate(g))
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, calls.Load())

	first, err := cr.SelectSeeds(ctx, g)
	require.NoError(t, err)
	first[0] = "mutated"
	second, err := cr.SelectSeeds(ctx, g)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0], "callers must not alias the cache")

	cr.Invalidate(g)
	_, err = cr.SelectSeeds(ctx, g)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())

	cr.Reset()
	_, err = cr.SelectSeeds(ctx, g)
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { strategy.WithPoolFactor(0) })
	assert.Panics(t, func() { strategy.WithPoolSize(0) })
	assert.Panics(t, func() { strategy.WithMaxAttempts(0) })
	assert.Panics(t, func() { strategy.WithFineMetric("x", nil) })
	assert.Panics(t, func() { strategy.NewBeatDegree(nil) })
}
