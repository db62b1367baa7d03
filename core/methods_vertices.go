// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - The Graph is immutable after NewGraph; all methods are safe for
//     concurrent use without locking.
package core

import (
	"fmt"
	"sort"
)

// HasVertex reports whether id is present in the catalog.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
//
// Behavior highlights:
//   - Returns a fresh slice; callers may reorder it freely.
//   - Stable enumeration surface for reproducible rankings and outputs.
//
// Complexity:
//   - Time O(V·log V), Space O(V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Degree returns the number of distinct neighbors of id.
//
// Errors:
//   - ErrVertexNotFound: id is not in the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	return v.Degree(), nil
}

// Vertex returns the catalog entry for id.
//
// Errors:
//   - ErrVertexNotFound: id is not in the graph.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return v, nil
}
