package metrics

import (
	"fmt"

	"github.com/katalvlaran/pandemaniac/bfs"
	"github.com/katalvlaran/pandemaniac/core"
)

// DistanceMap returns the BFS distance from src to every vertex reachable
// from it. Unreachable vertices are absent.
func DistanceMap(g *core.Graph, src string) (bfs.DistanceMap, error) {
	dist, err := bfs.Distances(g, src)
	if err != nil {
		return nil, fmt.Errorf("DistanceMap(%q): %w", src, err)
	}

	return dist, nil
}

// IsConnected reports whether every vertex is reachable from every other.
// The empty graph is considered connected.
func IsConnected(g *core.Graph) (bool, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return true, nil
	}
	dist, err := DistanceMap(g, ids[0])
	if err != nil {
		return false, err
	}

	return len(dist) == len(ids), nil
}

// coveringDistances runs one BFS per vertex and hands each full distance map
// to visit. It fails with ErrDisconnected on the first map that does not
// cover the whole graph.
func coveringDistances(g *core.Graph, method string, visit func(src string, dist bfs.DistanceMap)) error {
	ids := g.Vertices()
	if len(ids) == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptyGraph)
	}
	for _, src := range ids {
		dist, err := DistanceMap(g, src)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		if len(dist) < len(ids) {
			return fmt.Errorf("%s: %q reaches %d of %d vertices: %w",
				method, src, len(dist), len(ids), ErrDisconnected)
		}
		visit(src, dist)
	}

	return nil
}

// Diameter returns the maximum, over all vertices, of the largest value in
// that vertex's distance map.
//
// Errors:
//   - ErrEmptyGraph when g has no vertices.
//   - ErrDisconnected when some vertex cannot reach every other vertex.
//
// Complexity: O(V·(V+E)).
func Diameter(g *core.Graph) (int, error) {
	var best int
	err := coveringDistances(g, "Diameter", func(_ string, dist bfs.DistanceMap) {
		if m := dist.Max(); m > best {
			best = m
		}
	})
	if err != nil {
		return 0, err
	}

	return best, nil
}

// AverageDistance returns the mean BFS distance over all ordered pairs of
// distinct vertices. A single-vertex graph has no pairs and yields 0.
//
// Errors:
//   - ErrEmptyGraph when g has no vertices.
//   - ErrDisconnected when some vertex cannot reach every other vertex.
//
// Complexity: O(V·(V+E)).
func AverageDistance(g *core.Graph) (float64, error) {
	var sum, pairs int
	err := coveringDistances(g, "AverageDistance", func(src string, dist bfs.DistanceMap) {
		for id, d := range dist {
			if id == src {
				continue
			}
			sum += d
			pairs++
		}
	})
	if err != nil {
		return 0, err
	}
	if pairs == 0 {
		return 0, nil
	}

	return float64(sum) / float64(pairs), nil
}
