// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center – leaf[i].
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/pandemaniac/core"

// File-local constants (no magic numbers/strings; stable method tags).
const (
	methodStar   = "Star"
	minStarNodes = 2

	// Center is the fixed hub ID used by Star.
	Center = "Center"
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(adj core.Adjacency, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		adj.AddVertex(Center)
		for i := 1; i < n; i++ {
			adj.AddEdge(Center, cfg.idFn(i))
		}

		return nil
	}
}
