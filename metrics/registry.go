package metrics

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pandemaniac/core"
)

// Scores computes one score per vertex in a single pass over the graph
// (a "dict function").
type Scores func(g *core.Graph) (map[string]float64, error)

// NodeScore computes the score of one vertex on demand.
type NodeScore func(g *core.Graph, id string) (float64, error)

// Registered metric names.
const (
	NameDegree      = "degree"
	NameCloseness   = "closeness"
	NameBetweenness = "betweenness"
	NamePageRank    = "pagerank"
	NameClustering  = "clustering"
)

var registry = map[string]Scores{
	NameDegree:      Degree,
	NameCloseness:   Closeness,
	NameBetweenness: Betweenness,
	NamePageRank:    PageRank,
	NameClustering:  Clustering,
}

// Lookup returns the Scores function registered under name.
//
// Errors:
//   - ErrUnknownMetric for an unregistered name.
func Lookup(name string) (Scores, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownMetric)
	}

	return fn, nil
}

// Names lists the registered metric names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// DegreeOf is the per-node degree as a NodeScore.
func DegreeOf(g *core.Graph, id string) (float64, error) {
	d, err := g.Degree(id)

	return float64(d), err
}

// ClusteringOf is ClusteringCoefficient as a NodeScore.
func ClusteringOf(g *core.Graph, id string) (float64, error) {
	return ClusteringCoefficient(g, id)
}
