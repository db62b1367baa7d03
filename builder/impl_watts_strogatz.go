// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_watts_strogatz.go - implementation of WattsStrogatz(n, k, beta).
//
// Canonical model:
//   - Start from a ring lattice where vertex i is joined to its k/2 nearest
//     neighbors on each side.
//   - For every lattice edge (i, i+j), j = 1..k/2 in that order, with
//     probability beta replace the far endpoint by a uniformly chosen vertex
//     that is neither i nor already adjacent to i. If no such vertex exists
//     the edge is kept.
//
// Contract:
//   - n ≥ 3, k even, 2 ≤ k < n (else ErrTooFewVertices / ErrInvalidDegree).
//   - 0 ≤ beta ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when beta > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·k) expected.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodWattsStrogatz      = "WattsStrogatz"
	minWattsStrogatzVertices = 3
	minWattsStrogatzDegree   = 2
)

// WattsStrogatz returns a Constructor that builds a small-world graph.
func WattsStrogatz(n, k int, beta float64) Constructor {
	return func(adj core.Adjacency, cfg builderConfig) error {
		if err := validateMin(methodWattsStrogatz, "n", n, minWattsStrogatzVertices); err != nil {
			return err
		}
		if err := validateMin(methodWattsStrogatz, "k", k, minWattsStrogatzDegree); err != nil {
			return err
		}
		if k%2 != 0 || k >= n {
			return fmt.Errorf("%s: k=%d must be even and < n=%d: %w", methodWattsStrogatz, k, n, ErrInvalidDegree)
		}
		if err := validateProbability(methodWattsStrogatz, "beta", beta); err != nil {
			return err
		}
		if cfg.rng == nil && beta > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodWattsStrogatz, ErrNeedRandSource)
		}

		// Index-level edge set so rewiring can test adjacency in O(1).
		nbr := make([]map[int]bool, n)
		for i := range nbr {
			nbr[i] = make(map[int]bool, k)
		}
		link := func(a, b int) { nbr[a][b], nbr[b][a] = true, true }
		unlink := func(a, b int) { delete(nbr[a], b); delete(nbr[b], a) }

		for i := 0; i < n; i++ {
			for j := 1; j <= k/2; j++ {
				link(i, (i+j)%n)
			}
		}

		if beta > 0 {
			for j := 1; j <= k/2; j++ {
				for i := 0; i < n; i++ {
					far := (i + j) % n
					if !nbr[i][far] || cfg.rng.Float64() >= beta {
						continue
					}
					if len(nbr[i]) >= n-1 {
						continue // i is adjacent to everyone; nothing to rewire to
					}
					w := cfg.rng.Intn(n)
					for w == i || nbr[i][w] {
						w = cfg.rng.Intn(n)
					}
					unlink(i, far)
					link(i, w)
				}
			}
		}

		ids := addVertices(adj, n, cfg)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j > i && nbr[i][j] {
					adj.AddEdge(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
