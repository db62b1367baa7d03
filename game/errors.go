// SPDX-License-Identifier: MIT

package game

import "errors"

// Sentinel errors for games and seed sets.
var (
	// ErrInvalidGame indicates a Game with a nil graph or non-positive counts.
	ErrInvalidGame = errors.New("game: invalid game")

	// ErrBadGameName indicates a graph-file name that does not follow
	// "<players>.<seeds>.<id>".
	ErrBadGameName = errors.New("game: bad game name")

	// ErrSeedCount indicates a seed set whose size differs from NumSeeds.
	ErrSeedCount = errors.New("game: wrong number of seeds")

	// ErrDuplicateSeed indicates a seed set listing one vertex twice.
	ErrDuplicateSeed = errors.New("game: duplicate seed")

	// ErrUnknownSeed indicates a seed that is not a vertex of the game graph.
	ErrUnknownSeed = errors.New("game: seed not in graph")
)
