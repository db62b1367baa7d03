package metrics

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/core"
)

// TripleCount returns the number of unordered neighbor pairs of id,
// deg·(deg−1)/2.
//
// Errors:
//   - core.ErrVertexNotFound if id is missing.
//
// Complexity: O(1).
func TripleCount(g *core.Graph, id string) (int, error) {
	d, err := g.Degree(id)
	if err != nil {
		return 0, fmt.Errorf("TripleCount: %w", err)
	}

	return d * (d - 1) / 2, nil
}

// TriangleCount returns the number of unordered pairs {u,w} of neighbors of
// id that are themselves adjacent.
//
// Every ordered pair (u,w), u≠w, of neighbors is tested, so each triangle is
// seen twice and the raw count is halved. An odd raw count cannot happen on a
// symmetric graph and is reported as ErrOddTriangleCount.
//
// Complexity: O(d²) with d = deg(id).
func TriangleCount(g *core.Graph, id string) (int, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return 0, fmt.Errorf("TriangleCount: %w", err)
	}

	var raw int
	for _, u := range nbrs {
		for _, w := range nbrs {
			if u == w {
				continue
			}
			if g.HasEdge(w, u) {
				raw++
			}
		}
	}
	if raw%2 != 0 {
		return 0, fmt.Errorf("TriangleCount(%q): raw=%d: %w", id, raw, ErrOddTriangleCount)
	}

	return raw / 2, nil
}

// ClusteringCoefficient returns TriangleCount/TripleCount for id, or 0 when
// id has fewer than two neighbors. The result lies in [0,1].
func ClusteringCoefficient(g *core.Graph, id string) (float64, error) {
	triples, err := TripleCount(g, id)
	if err != nil {
		return 0, err
	}
	if triples == 0 {
		return 0, nil
	}
	triangles, err := TriangleCount(g, id)
	if err != nil {
		return 0, err
	}

	return float64(triangles) / float64(triples), nil
}

// AverageClusteringCoefficient returns the arithmetic mean of every vertex's
// local clustering coefficient.
//
// Errors:
//   - ErrEmptyGraph when g has no vertices.
func AverageClusteringCoefficient(g *core.Graph) (float64, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return 0, fmt.Errorf("AverageClusteringCoefficient: %w", ErrEmptyGraph)
	}

	var sum float64
	for _, id := range ids {
		c, err := ClusteringCoefficient(g, id)
		if err != nil {
			return 0, err
		}
		sum += c
	}

	return sum / float64(len(ids)), nil
}

// OverallClusteringCoefficient returns the global ratio
// Σ TriangleCount / Σ TripleCount over all vertices.
//
// A graph without any triple (every degree < 2) yields 0, matching the local
// definition.
//
// Errors:
//   - ErrEmptyGraph when g has no vertices.
func OverallClusteringCoefficient(g *core.Graph) (float64, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return 0, fmt.Errorf("OverallClusteringCoefficient: %w", ErrEmptyGraph)
	}

	var triangles, triples int
	for _, id := range ids {
		tc, err := TripleCount(g, id)
		if err != nil {
			return 0, err
		}
		if tc == 0 {
			continue
		}
		tr, err := TriangleCount(g, id)
		if err != nil {
			return 0, err
		}
		triangles += tr
		triples += tc
	}
	if triples == 0 {
		return 0, nil
	}

	return float64(triangles) / float64(triples), nil
}
