// SPDX-License-Identifier: MIT

package strategy

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
)

const (
	methodTwinAttack = "TwinAttack"
	// twinsPerHub is how many neighbors are harvested from each hub.
	twinsPerHub = 2
)

// TwinAttack seeds the neighbors of high-degree vertices instead of the
// vertices themselves, targeting the territory a HighDegree opponent seeds.
//
// It walks the degree ranking from position Skip and, for each hub, takes
// its first two neighbors in the order the graph file lists them. Listed
// ids that are not vertices, self-loops and duplicates are skipped; a hub
// whose own listing yields fewer than two is completed from its remaining
// neighbors in ascending ID order. If the walk ends before NumSeeds
// distinct vertices are collected, the set is topped up from the degree
// ranking.
type TwinAttack struct {
	Skip int
}

// NewTwinAttack returns a TwinAttack that ignores the top skip hubs.
// A negative skip is treated as 0.
func NewTwinAttack(skip int) *TwinAttack {
	if skip < 0 {
		skip = 0
	}

	return &TwinAttack{Skip: skip}
}

// Name implements Strategy.
func (t *TwinAttack) Name() string { return methodTwinAttack }

// SelectSeeds implements Strategy.
func (t *TwinAttack) SelectSeeds(ctx context.Context, g *game.Game) (game.SeedSet, error) {
	if err := checkSeedCount(methodTwinAttack, g); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodTwinAttack, err)
	}
	ranked, err := HighDegree().Rank(g.Graph)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodTwinAttack, err)
	}

	k := g.NumSeeds
	seen := make(map[string]struct{}, k)
	out := make(game.SeedSet, 0, k)
	add := func(id string) {
		if _, dup := seen[id]; dup || len(out) == k {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	src := g.Graph.Source()
	for i := t.Skip; i < len(ranked) && len(out) < k; i++ {
		twins, err := hubTwins(g, src, ranked[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodTwinAttack, err)
		}
		for _, id := range twins {
			add(id)
		}
	}
	for _, id := range ranked {
		if len(out) == k {
			break
		}
		add(id)
	}

	return out, nil
}

// hubTwins returns up to twinsPerHub neighbors of hub, listing order first.
func hubTwins(g *game.Game, src core.Adjacency, hub string) ([]string, error) {
	twins := make([]string, 0, twinsPerHub)
	taken := func(id string) bool {
		for _, t := range twins {
			if t == id {
				return true
			}
		}
		return false
	}
	for _, id := range src[hub] {
		if len(twins) == twinsPerHub {
			return twins, nil
		}
		if id == hub || !g.Graph.HasVertex(id) || taken(id) {
			continue
		}
		twins = append(twins, id)
	}
	if len(twins) == twinsPerHub {
		return twins, nil
	}

	// Edges known only from the other endpoint's listing.
	nbrs, err := g.Graph.NeighborIDs(hub)
	if err != nil {
		return nil, err
	}
	for _, id := range nbrs {
		if len(twins) == twinsPerHub {
			break
		}
		if !taken(id) {
			twins = append(twins, id)
		}
	}

	return twins, nil
}
