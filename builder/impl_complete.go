// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits every unordered pair {i,j}, i<j, in lexicographic index order.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/pandemaniac/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(adj core.Adjacency, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}

		ids := addVertices(adj, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				adj.AddEdge(ids[i], ids[j])
			}
		}

		return nil
	}
}
