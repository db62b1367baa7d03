// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against one Adjacency, then freezes it with core.NewGraph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// Constructor applies a deterministic mutation to an Adjacency under
// construction using the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit only simple undirected edges (no loops).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(adj core.Adjacency, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order to one Adjacency and returns the frozen core.Graph.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; freezing O(V+E).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	adj, err := BuildAdjacency(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(adj)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildAdjacency is BuildGraph without the final freeze; it returns the raw
// listing, which is also the graph-file shape.
func BuildAdjacency(bopts []BuilderOption, cons ...Constructor) (core.Adjacency, error) {
	cfg := newBuilderConfig(bopts...)
	adj := core.Adjacency{}

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(adj, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return adj, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Cycle(n)                 C_n, n ≥ 3
// Path(n)                  P_n, n ≥ 2
// Star(n)                  center "Center" + n−1 leaves, n ≥ 2
// Complete(n)              K_n, n ≥ 1
// ErdosRenyi(n, p)         G(n,p); needs an RNG when 0<p<1
// WattsStrogatz(n, k, b)   ring lattice of even degree k, rewiring prob b
// BarabasiAlbert(n, m)     preferential attachment, m edges per new vertex
