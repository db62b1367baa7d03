// SPDX-License-Identifier: MIT

package match

import "errors"

// Sentinel errors for match orchestration.
var (
	// ErrPlayerCount indicates the number of strategies does not match the
	// game's player count.
	ErrPlayerCount = errors.New("match: wrong number of players")

	// ErrSeedCount indicates a strategy returned a seed set of the wrong size.
	ErrSeedCount = errors.New("match: strategy returned wrong number of seeds")

	// ErrNoGames indicates GenerateGames or Tally was asked for no games.
	ErrNoGames = errors.New("match: no games")
)
