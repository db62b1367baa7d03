// SPDX-License-Identifier: MIT

// Package strategy implements seed-selection strategies for the game.
//
// Every strategy satisfies Strategy: given a *game.Game it returns exactly
// NumSeeds distinct vertices of the game graph.
//
// Strategies:
//
//   - Random: uniform draws into a set, seeded and mutex-guarded.
//   - TopK: top NumSeeds vertices by a metric (HighDegree, ByMetric).
//   - TwinAttack: neighbors of high-degree hubs rather than the hubs.
//   - CompositeRank: coarse metric pool, re-ranked by a fine metric, cached.
//   - BeatDegree: oracle-driven search for a set that beats HighDegree.
//
// Rankings are deterministic: scores descending, ties by vertex ID
// ascending. Cached strategies key their cache by game Name
// ("<players>.<seeds>.<id>") and are safe for
// concurrent use; concurrent misses for one game compute once.
package strategy
