// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors - NewGraph from an Adjacency, JSON decoding of listings.
// Policy:
//   - Construction is the only place that normalizes input; queries never fail
//     for reasons other than a missing vertex.
//   - Unknown neighbor IDs and self-references are dropped, not reported.

package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// NewGraph builds an immutable Graph from adj.
//
// Implementation:
//   - Stage 1: Create one Vertex per key (ErrEmptyVertexID on "").
//   - Stage 2: For each key/neighbor pair whose neighbor is also a key, add
//     the edge to both endpoints' neighbor sets.
//   - Stage 3: Count undirected edges and keep a deep copy of adj.
//
// Behavior highlights:
//   - Asymmetric listings become symmetric ("A":["B"] alone yields A–B).
//   - Neighbor IDs absent from the keys are silently dropped.
//   - Self-references (id lists itself) are dropped; the graph has no loops.
//   - Duplicate listings collapse (set semantics).
//
// Inputs:
//   - adj: listing id → neighbor ids; may be nil (empty graph).
//
// Returns:
//   - *Graph: the constructed graph.
//   - error: nil on success.
//
// Errors:
//   - ErrEmptyVertexID: a key is the empty string.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func NewGraph(adj Adjacency) (*Graph, error) {
	g := &Graph{
		vertices: make(map[string]*Vertex, len(adj)),
		source:   adj.Clone(),
	}

	// Stage 1: vertex catalog.
	for id := range adj {
		if id == "" {
			return nil, fmt.Errorf("NewGraph: %w", ErrEmptyVertexID)
		}
		g.vertices[id] = &Vertex{ID: id, neighbors: make(map[string]struct{})}
	}

	// Stage 2: symmetric edges between known keys only.
	for id, nbrs := range adj {
		u := g.vertices[id]
		for _, nid := range nbrs {
			if nid == id {
				continue
			}
			v, ok := g.vertices[nid]
			if !ok {
				continue
			}
			u.neighbors[nid] = struct{}{}
			v.neighbors[id] = struct{}{}
		}
	}

	// Stage 3: every undirected edge is seen from both endpoints.
	var sum int
	for _, v := range g.vertices {
		sum += len(v.neighbors)
	}
	g.edgeCount = sum / 2

	return g, nil
}

// ParseAdjacency decodes a JSON object mapping vertex IDs to arrays of
// neighbor IDs.
//
// Errors:
//   - ErrMalformedAdjacency: data is not valid JSON, is not an object, or has
//     a value that is not an array of strings. The decoder error is attached.
//
// Complexity:
//   - Time O(len(data)), Space O(V+E).
func ParseAdjacency(data []byte) (Adjacency, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("ParseAdjacency: expected JSON object: %w", ErrMalformedAdjacency)
	}

	var adj Adjacency
	if err := json.Unmarshal(trimmed, &adj); err != nil {
		return nil, fmt.Errorf("ParseAdjacency: %v: %w", err, ErrMalformedAdjacency)
	}
	for id, nbrs := range adj {
		if nbrs == nil {
			// "id": null is tolerated as an isolated vertex.
			adj[id] = []string{}
		}
	}

	return adj, nil
}

// ReadAdjacency reads all of r and decodes it with ParseAdjacency.
func ReadAdjacency(r io.Reader) (Adjacency, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadAdjacency: %w", err)
	}

	return ParseAdjacency(data)
}

// FromJSON is ParseAdjacency followed by NewGraph.
func FromJSON(data []byte) (*Graph, error) {
	adj, err := ParseAdjacency(data)
	if err != nil {
		return nil, err
	}

	return NewGraph(adj)
}
