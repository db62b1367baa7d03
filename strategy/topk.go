// SPDX-License-Identifier: MIT

package strategy

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
	"github.com/katalvlaran/pandemaniac/metrics"
)

// TopK returns the NumSeeds best vertices under one metric.
//
// The metric is either a dict function (metrics.Scores, one pass over the
// graph) or a per-node function (metrics.NodeScore, evaluated per vertex).
// Ranking: score descending, ties by vertex ID ascending, so repeated calls
// on the same game return the same set.
type TopK struct {
	name   string
	scores metrics.Scores
	node   metrics.NodeScore
}

// NewTopK ranks by a dict function. Panics on nil fn.
func NewTopK(name string, fn metrics.Scores) *TopK {
	if fn == nil {
		panic("strategy: NewTopK(nil)")
	}

	return &TopK{name: name, scores: fn}
}

// NewTopKByNode ranks by a per-node function. Panics on nil fn.
func NewTopKByNode(name string, fn metrics.NodeScore) *TopK {
	if fn == nil {
		panic("strategy: NewTopKByNode(nil)")
	}

	return &TopK{name: name, node: fn}
}

// HighDegree ranks by vertex degree.
func HighDegree() *TopK {
	return NewTopK("HighDegree", metrics.Degree)
}

// ByMetric ranks by the registered metric name (see metrics.Names).
func ByMetric(name string) (*TopK, error) {
	fn, err := metrics.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("ByMetric: %w", err)
	}

	return NewTopK(name, fn), nil
}

// Name implements Strategy.
func (t *TopK) Name() string { return t.name }

// Rank returns every vertex of g in ranking order.
func (t *TopK) Rank(g *core.Graph) ([]string, error) {
	var (
		scores map[string]float64
		err    error
	)
	if t.scores != nil {
		scores, err = t.scores(g)
	} else {
		scores, err = nodeScores(g, t.node)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}

	return rankByScores(g.Vertices(), scores), nil
}

// SelectSeeds implements Strategy.
func (t *TopK) SelectSeeds(ctx context.Context, g *game.Game) (game.SeedSet, error) {
	if err := checkSeedCount(t.name, g); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	ranked, err := t.Rank(g.Graph)
	if err != nil {
		return nil, err
	}

	return game.SeedSet(ranked[:g.NumSeeds]), nil
}
