// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_erdos_renyi.go - implementation of ErdosRenyi(n, p) constructor.
//
// Canonical model:
//   - G(n,p): include each unordered pair {i,j} independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j < i asc.
//   - Deterministic outcomes for fixed seed due to fixed trial order.
//   - The result may be disconnected; see metrics.IsConnected.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodErdosRenyi      = "ErdosRenyi"
	minErdosRenyiVertices = 1
)

// ErdosRenyi returns a Constructor that samples G(n,p).
func ErdosRenyi(n int, p float64) Constructor {
	return func(adj core.Adjacency, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(methodErdosRenyi, "n", n, minErdosRenyiVertices); err != nil {
			return err
		}
		if err := validateProbability(methodErdosRenyi, "p", p); err != nil {
			return err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodErdosRenyi, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically.
		ids := addVertices(adj, n, cfg)

		// 3) One Bernoulli trial per unordered pair.
		for i := 0; i < n; i++ {
			for j := 0; j < i; j++ {
				switch {
				case p == 0:
					continue
				case p == 1:
					adj.AddEdge(ids[i], ids[j])
				case cfg.rng.Float64() < p:
					adj.AddEdge(ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
