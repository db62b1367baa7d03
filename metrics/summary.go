package metrics

import (
	"errors"

	"github.com/katalvlaran/pandemaniac/core"
)

// Summary bundles the global statistics of one graph.
//
// Diameter and AverageDistance are only meaningful when Connected is true;
// they are left at zero otherwise.
type Summary struct {
	Vertices          int
	Edges             int
	AverageClustering float64
	OverallClustering float64
	Connected         bool
	Diameter          int
	AverageDistance   float64
}

// Summarize computes a Summary of g. A disconnected graph is not an error
// here: Connected is false and the distance fields stay zero.
//
// Errors:
//   - ErrEmptyGraph when g has no vertices.
func Summarize(g *core.Graph) (Summary, error) {
	s := Summary{Vertices: g.VertexCount(), Edges: g.EdgeCount()}

	var err error
	if s.AverageClustering, err = AverageClusteringCoefficient(g); err != nil {
		return Summary{}, err
	}
	if s.OverallClustering, err = OverallClusteringCoefficient(g); err != nil {
		return Summary{}, err
	}

	s.Diameter, err = Diameter(g)
	switch {
	case errors.Is(err, ErrDisconnected):
		return s, nil
	case err != nil:
		return Summary{}, err
	}
	s.Connected = true
	if s.AverageDistance, err = AverageDistance(g); err != nil {
		return Summary{}, err
	}

	return s, nil
}
