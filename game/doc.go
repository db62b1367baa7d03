// SPDX-License-Identifier: MIT

// Package game defines one round of the seed-selection game: a Game (graph
// plus player and seed counts), the SeedSet every strategy must produce,
// the graph-file naming convention and the round-output file format.
//
// File conventions:
//
//   - Graph files are JSON objects id → [neighbor ids] named
//     "<players>.<seeds>.<id>[.ext…]", e.g. "2.10.31.json".
//   - Output files are "<players>.<seeds>.<id>.output" and hold one seed id
//     per line, NumSeeds lines per round, DefaultRounds rounds.
package game
