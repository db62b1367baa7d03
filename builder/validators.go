// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// validators.go - shared parameter checks for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability returns ErrInvalidProbability unless 0 ≤ p ≤ 1.
func validateProbability(method, name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s: %s=%.6f not in [0,1]: %w", method, name, p, ErrInvalidProbability)
	}

	return nil
}

// addVertices registers n vertices with IDs cfg.idFn(0..n-1) and returns them.
func addVertices(adj core.Adjacency, n int, cfg builderConfig) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		adj.AddVertex(ids[i])
	}

	return ids
}
