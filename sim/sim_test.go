package sim_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/sim"
)

func TestPlayerLabel(t *testing.T) {
	assert.Equal(t, "strategy0", sim.PlayerLabel(0))
	assert.Equal(t, "strategy12", sim.PlayerLabel(12))
}

func TestCounted(t *testing.T) {
	inner := sim.OracleFunc(func(_ context.Context, _ core.Adjacency, a sim.Assignment) (sim.Result, error) {
		out := sim.Result{}
		for label, seeds := range a {
			out[label] = len(seeds)
		}
		return out, nil
	})
	c := sim.NewCounted(inner)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Run(context.Background(), core.Adjacency{}, sim.Assignment{sim.PlayerLabel(0): {"a", "b"}})
			assert.NoError(t, err)
			assert.Equal(t, 2, res[sim.PlayerLabel(0)])
		}()
	}
	wg.Wait()
	require.Equal(t, int64(8), c.Calls())
}
