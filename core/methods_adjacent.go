// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and listing exports.
//
// Determinism:
//   - NeighborIDs and AdjacencyList emit neighbor IDs sorted ascending.
//   - Source returns the listing exactly as given to NewGraph (deep copy).
package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the sorted, de-duplicated neighbor IDs of id.
//
// Errors:
//   - ErrVertexNotFound: id is not in the graph.
//
// Complexity:
//   - Time O(d·log d), Space O(d) where d = Degree(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}

	return sortedSet(v.neighbors), nil
}

// HasEdge reports whether u and v are adjacent. Missing endpoints yield false.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasEdge(u, v string) bool {
	uv, ok := g.vertices[u]
	if !ok {
		return false
	}
	_, ok = uv.neighbors[v]

	return ok
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// AdjacencyList returns the canonical symmetric listing of the graph:
// every vertex maps to its sorted neighbor IDs, and unknown IDs are gone.
//
// Complexity:
//   - Time O(V + E·log d), Space O(V+E).
func (g *Graph) AdjacencyList() Adjacency {
	out := make(Adjacency, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = sortedSet(v.neighbors)
	}

	return out
}

// Source returns a deep copy of the listing the graph was built from,
// including any asymmetric or dangling entries.
//
// Notes:
//   - This is the shape external simulators expect; use AdjacencyList when
//     a normalized view is needed.
func (g *Graph) Source() Adjacency {
	return g.source.Clone()
}

// sortedSet flattens a string set into an ascending slice.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
