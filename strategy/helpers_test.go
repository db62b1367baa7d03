package strategy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pandemaniac/builder"
	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/sim"
)

var (
	baseline  = sim.PlayerLabel(0)
	candidate = sim.PlayerLabel(1)
)

// newGame wraps the graph built by cons into a two-player game.
func newGame(t *testing.T, id string, seeds int, opts []builder.BuilderOption, cons ...builder.Constructor) *game.Game {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	gm, err := game.New(id, g, 2, seeds)
	require.NoError(t, err)

	return gm
}

// scaleFree is a 40-vertex preferential-attachment game.
func scaleFree(t *testing.T, seeds int) *game.Game {
	return newGame(t, "sf", seeds, []builder.BuilderOption{builder.WithSeed(1)}, builder.BarabasiAlbert(40, 2))
}

// alwaysWin scores the candidate above the baseline.
var alwaysWin = sim.OracleFunc(func(context.Context, core.Adjacency, sim.Assignment) (sim.Result, error) {
	return sim.Result{baseline: 1, candidate: 2}, nil
})

// neverWin scores every match as a tie.
var neverWin = sim.OracleFunc(func(context.Context, core.Adjacency, sim.Assignment) (sim.Result, error) {
	return sim.Result{baseline: 5, candidate: 5}, nil
})

// winWith lets the candidate win only when it seeds id.
func winWith(id string) sim.Oracle {
	return sim.OracleFunc(func(_ context.Context, _ core.Adjacency, a sim.Assignment) (sim.Result, error) {
		for _, s := range a[candidate] {
			if s == id {
				return sim.Result{baseline: 0, candidate: 1}, nil
			}
		}
		return sim.Result{baseline: 1, candidate: 0}, nil
	})
}

var errOracleDown = errors.New("oracle down")

var failing = sim.OracleFunc(func(context.Context, core.Adjacency, sim.Assignment) (sim.Result, error) {
	return nil, errOracleDown
})
