// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Graph and Adjacency declarations plus sentinel errors.
//
// Package core defines the central Graph and Vertex types and the Adjacency
// listing they are built from.
//
// Errors:
//
//	ErrEmptyVertexID      - vertex ID is the empty string.
//	ErrVertexNotFound     - requested vertex does not exist.
//	ErrMalformedAdjacency - input cannot be decoded as id → []id.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a listing key or edge endpoint is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrMalformedAdjacency indicates that a payload could not be decoded as
	// a mapping from vertex ID to a list of neighbor IDs.
	ErrMalformedAdjacency = errors.New("core: malformed adjacency")
)

// Adjacency maps a vertex ID to the IDs it lists as neighbors.
//
// It is the wire shape of graph definition files and of the graph argument
// handed to the simulation oracle. Listings may be asymmetric and may mention
// IDs that are not keys; NewGraph normalizes both.
type Adjacency map[string][]string

// AddVertex registers id as a key with no neighbors if it is missing.
// Complexity: O(1).
func (a Adjacency) AddVertex(id string) {
	if _, ok := a[id]; !ok {
		a[id] = []string{}
	}
}

// AddEdge lists u and v as each other's neighbors, registering both as keys.
// Duplicates are harmless; NewGraph collapses them.
// Complexity: O(1) amortized.
func (a Adjacency) AddEdge(u, v string) {
	a.AddVertex(u)
	a.AddVertex(v)
	a[u] = append(a[u], v)
	a[v] = append(a[v], u)
}

// Clone returns a deep copy; neighbor slices are not shared.
// Complexity: O(V+E).
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for id, nbrs := range a {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		out[id] = cp
	}

	return out
}

// Keys returns the listing keys sorted ascending.
func (a Adjacency) Keys() []string {
	keys := make([]string, 0, len(a))
	for id := range a {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	return keys
}

// Vertex represents a node of the graph.
//
// ID uniquely identifies this Vertex within its Graph; neighbors holds the
// IDs of adjacent vertices (set semantics, never contains ID itself).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	neighbors map[string]struct{}
}

// Degree returns the size of the neighbor set.
func (v *Vertex) Degree() int { return len(v.neighbors) }

// Graph is the immutable undirected graph.
//
// vertices holds the catalog; edgeCount is fixed at construction;
// source is a private deep copy of the listing the graph was built from.
type Graph struct {
	vertices  map[string]*Vertex
	edgeCount int
	source    Adjacency
}
