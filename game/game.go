// SPDX-License-Identifier: MIT

package game

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pandemaniac/core"
)

// Game is one immutable game instance. ID is the id component of the
// graph-file name and is not unique on its own ("2.5.1" and "2.10.1" share
// ID "1"); Name is the identity strategy caches use.
type Game struct {
	ID         string
	NumPlayers int
	NumSeeds   int
	Graph      *core.Graph
}

// New validates and returns a Game.
//
// Errors:
//   - ErrInvalidGame: empty id, nil graph, players ≤ 0 or seeds ≤ 0.
func New(id string, g *core.Graph, players, seeds int) (*Game, error) {
	switch {
	case id == "":
		return nil, fmt.Errorf("New: empty id: %w", ErrInvalidGame)
	case g == nil:
		return nil, fmt.Errorf("New(%s): nil graph: %w", id, ErrInvalidGame)
	case players <= 0:
		return nil, fmt.Errorf("New(%s): players=%d: %w", id, players, ErrInvalidGame)
	case seeds <= 0:
		return nil, fmt.Errorf("New(%s): seeds=%d: %w", id, seeds, ErrInvalidGame)
	}

	return &Game{ID: id, NumPlayers: players, NumSeeds: seeds, Graph: g}, nil
}

// Name renders the graph-file stem "<players>.<seeds>.<id>". Two Games
// with the same Name must describe the same graph.
func (g *Game) Name() string {
	return fmt.Sprintf("%d.%d.%s", g.NumPlayers, g.NumSeeds, g.ID)
}

// SeedSet is the list of vertices a player seeds. A valid SeedSet holds
// exactly NumSeeds distinct vertices of the game graph.
type SeedSet []string

// Validate checks s against g.
//
// Errors:
//   - ErrSeedCount, ErrDuplicateSeed, ErrUnknownSeed.
func (s SeedSet) Validate(g *Game) error {
	if len(s) != g.NumSeeds {
		return fmt.Errorf("Validate(%s): got %d seeds, want %d: %w", g.Name(), len(s), g.NumSeeds, ErrSeedCount)
	}
	seen := make(map[string]struct{}, len(s))
	for _, id := range s {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("Validate(%s): %q: %w", g.Name(), id, ErrDuplicateSeed)
		}
		seen[id] = struct{}{}
		if !g.Graph.HasVertex(id) {
			return fmt.Errorf("Validate(%s): %q: %w", g.Name(), id, ErrUnknownSeed)
		}
	}

	return nil
}

// Sorted returns a sorted copy of s.
func (s SeedSet) Sorted() SeedSet {
	out := make(SeedSet, len(s))
	copy(out, s)
	sort.Strings(out)

	return out
}

// Clone returns a copy of s that shares no storage with it.
func (s SeedSet) Clone() SeedSet {
	if s == nil {
		return nil
	}
	out := make(SeedSet, len(s))
	copy(out, s)

	return out
}

// Selector produces a seed set for a game. Every strategy satisfies it.
type Selector interface {
	SelectSeeds(ctx context.Context, g *Game) (SeedSet, error)
}
