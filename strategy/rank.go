// SPDX-License-Identifier: MIT

package strategy

import (
	"sort"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/metrics"
)

// rankByScores orders ids by score descending, ties by id ascending.
// ids not present in scores score 0.
func rankByScores(ids []string, scores map[string]float64) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := scores[out[i]], scores[out[j]]
		if si != sj {
			return si > sj
		}
		return out[i] < out[j]
	})

	return out
}

// nodeScores evaluates fn on every vertex.
func nodeScores(g *core.Graph, fn metrics.NodeScore) (map[string]float64, error) {
	ids := g.Vertices()
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		s, err := fn(g, id)
		if err != nil {
			return nil, err
		}
		out[id] = s
	}

	return out, nil
}
