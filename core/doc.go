// Package core provides the immutable, undirected Graph used by every other
// package of pandemaniac: a catalog of named vertices and symmetric neighbor
// sets built once from an adjacency listing.
//
// The Graph G = (V,E) has a deliberately small behavior surface:
//
//   - Undirected, unweighted, simple: no self-loops, duplicate edges collapse.
//   - Tolerant construction: neighbor IDs that are not keys of the listing
//     are dropped silently; self-references are dropped as well.
//   - Immutable after NewGraph returns; queries need no locking and a Graph
//     may be shared freely between goroutines.
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted IDs.
//   - The original listing is retained (Source) so that it can be handed to
//     an external simulator exactly as it was read.
//
// Construction:
//
//	adj, err := core.ParseAdjacency([]byte(`{"0":["1","3"],"1":["0","2"]}`))
//	g, err := core.NewGraph(adj)
//
// Graph sources (see package builder) assemble an Adjacency through
// AddVertex/AddEdge and then call NewGraph.
//
// Core Methods:
//
//	HasVertex(id string) bool            // O(1)
//	HasEdge(u, v string) bool            // O(1)
//	Degree(id string) (int, error)       // O(1)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), sorted
//	Vertices() []string                  // O(V·log V), sorted
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//	AdjacencyList() Adjacency            // O(V+E), canonical symmetric listing
//	Source() Adjacency                   // O(V+E), copy of the input listing
//
// Errors:
//
//	ErrEmptyVertexID      – zero-length vertex ID in the listing
//	ErrVertexNotFound     – query on a missing vertex
//	ErrMalformedAdjacency – payload is not a mapping id → list of ids
package core
