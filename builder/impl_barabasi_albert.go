// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// impl_barabasi_albert.go - implementation of BarabasiAlbert(n, m).
//
// Canonical model:
//   - Seed graph: a star on vertices 0..m (vertex 0 is the hub).
//   - Each subsequent vertex v = m+1..n-1 attaches to m distinct existing
//     vertices, each chosen with probability proportional to its degree
//     (sampling from the list of edge endpoints).
//
// Contract:
//   - m ≥ 1 and n > m (else ErrTooFewVertices / ErrInvalidDegree).
//   - cfg.rng must be non-nil when n > m+1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·m) expected; Space O(n·m) for the endpoint list.
//
// Determinism:
//   - Fixed vertex arrival order and sampling order ⇒ reproducible per seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minBarabasiAlbertM   = 1
)

// BarabasiAlbert returns a Constructor that builds a scale-free graph by
// preferential attachment.
func BarabasiAlbert(n, m int) Constructor {
	return func(adj core.Adjacency, cfg builderConfig) error {
		if err := validateMin(methodBarabasiAlbert, "m", m, minBarabasiAlbertM); err != nil {
			return err
		}
		if n <= m {
			return fmt.Errorf("%s: n=%d must exceed m=%d: %w", methodBarabasiAlbert, n, m, ErrInvalidDegree)
		}
		if cfg.rng == nil && n > m+1 {
			return fmt.Errorf("%s: rng is required: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}

		ids := addVertices(adj, n, cfg)

		// endpoints lists every edge endpoint once per incidence, so a
		// uniform draw from it is a degree-proportional draw of a vertex.
		endpoints := make([]int, 0, 2*n*m)
		for leaf := 1; leaf <= m; leaf++ {
			adj.AddEdge(ids[0], ids[leaf])
			endpoints = append(endpoints, 0, leaf)
		}

		targets := make(map[int]bool, m)
		order := make([]int, 0, m)
		for v := m + 1; v < n; v++ {
			clear(targets)
			order = order[:0]
			for len(order) < m {
				t := endpoints[cfg.rng.Intn(len(endpoints))]
				if targets[t] {
					continue
				}
				targets[t] = true
				order = append(order, t)
			}
			for _, t := range order {
				adj.AddEdge(ids[v], ids[t])
				endpoints = append(endpoints, v, t)
			}
		}

		return nil
	}
}
