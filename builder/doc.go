// SPDX-License-Identifier: MIT

// Package builder generates game graphs from composable, deterministic
// constructors.
//
// Every topology is a Constructor that mutates a core.Adjacency under the
// resolved builderConfig. BuildGraph applies constructors in order and
// freezes the result with core.NewGraph; BuildAdjacency returns the raw
// listing, which is also the on-disk graph-file shape.
//
// Components:
//
//   - Options: WithIDScheme, WithSymbNumb, WithDefaultIDs, WithRand, WithSeed.
//   - ID schemes: DefaultIDFn ("0","1",...) and SymbolNumberIDFn(prefix).
//   - Deterministic topologies: Cycle, Path, Star, Complete.
//   - Random topologies: ErdosRenyi, WattsStrogatz, BarabasiAlbert. These
//     need an RNG (WithSeed / WithRand) whenever they actually sample.
//
// Guarantees:
//
//   - Constructors never panic; invalid parameters yield sentinel errors
//     wrapped with the method name (errors.Is(err, ErrTooFewVertices), ...).
//   - Option constructors panic on nil arguments (programmer error).
//   - Same options, seed and constructor order ⇒ identical graph.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.BarabasiAlbert(500, 3),
//	)
package builder
