// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i – (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) for the ID slice.

package builder

import "github.com/katalvlaran/pandemaniac/core"

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(adj core.Adjacency, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		ids := addVertices(adj, n, cfg)
		// for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			adj.AddEdge(ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
