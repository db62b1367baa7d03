// Package metrics computes derived statistics of a core.Graph: local and
// global clustering, BFS distance maps, diameter, average distance, and
// per-node centrality scores used to rank seed candidates.
//
// Every function is a pure function of the (immutable) graph; nothing is
// cached here. Callers that evaluate the same metric repeatedly should keep
// the returned map themselves (see strategy.TopK's dict-function variant).
//
// Local structure
//
//	TripleCount(v)       = deg(v)·(deg(v)−1)/2
//	TriangleCount(v)     = |{ {u,w} ⊆ N(v) : u~w }|
//	ClusteringCoefficient(v) = TriangleCount / TripleCount, 0 when deg < 2
//
// Global structure
//
//	AverageClusteringCoefficient = mean over v of ClusteringCoefficient(v)
//	OverallClusteringCoefficient = Σ TriangleCount / Σ TripleCount
//
// The two differ whenever degrees are skewed; both are provided.
//
// Distances
//
//	Diameter and AverageDistance require a connected graph and fail with
//	ErrDisconnected otherwise; they never return a partial answer.
//
// Centrality
//
//	Degree, Closeness, Betweenness, PageRank and Clustering are exposed as
//	Scores ("dict functions": one pass over all nodes). Closeness,
//	Betweenness and PageRank delegate to gonum's graph/network package.
//	Lookup resolves a Scores function by name.
package metrics
