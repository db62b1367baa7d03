// Package bfs provides a breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: DistanceMap from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Distances(g, src) is the DistanceMap-only shortcut used by package metrics.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Distance maps drive diameter, average distance and connectivity checks.
//   - Each vertex is assigned a distance once, at the layer where it is first
//     discovered; later layers never overwrite it.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
//
// Usage
//
//	dist, err := bfs.Distances(g, "0")
//	if d, ok := dist.Get("3"); ok { /* reachable at distance d */ }
//
//	res, err := bfs.BFS(g, "0",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
