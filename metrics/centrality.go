package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pandemaniac/core"
)

// PageRank parameters, the standard damping factor and a tolerance that is
// tight enough for ranking.
const (
	pageRankDamping   = 0.85
	pageRankTolerance = 1e-6
)

// gonumView is a gonum copy of a core.Graph. Vertex i of the sorted
// vertex list is gonum node i.
type gonumView struct {
	ids   []string
	undir *simple.UndirectedGraph
}

// newGonumView converts g into a gonum undirected graph.
// Complexity: O(V + E·log d).
func newGonumView(g *core.Graph) (*gonumView, error) {
	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	u := simple.NewUndirectedGraph()
	for i, id := range ids {
		index[id] = int64(i)
		u.AddNode(simple.Node(i))
	}
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nid := range nbrs {
			j := index[nid]
			if j <= int64(i) {
				continue
			}
			u.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}

	return &gonumView{ids: ids, undir: u}, nil
}

// directed mirrors every undirected edge in both directions; PageRank needs
// a graph.Directed.
func (v *gonumView) directed() *simple.DirectedGraph {
	d := simple.NewDirectedGraph()
	nodes := v.undir.Nodes()
	for nodes.Next() {
		d.AddNode(nodes.Node())
	}
	edges := v.undir.Edges()
	for edges.Next() {
		e := edges.Edge()
		d.SetEdge(simple.Edge{F: e.From(), T: e.To()})
		d.SetEdge(simple.Edge{F: e.To(), T: e.From()})
	}

	return d
}

// relabel maps gonum node scores back to vertex IDs. Missing nodes score 0
// and non-finite values (isolated vertices in closeness) are clamped to 0.
func (v *gonumView) relabel(scores map[int64]float64) map[string]float64 {
	out := make(map[string]float64, len(v.ids))
	for i, id := range v.ids {
		s := scores[int64(i)]
		if math.IsNaN(s) || math.IsInf(s, 0) {
			s = 0
		}
		out[id] = s
	}

	return out
}

// Degree scores every vertex by its degree.
func Degree(g *core.Graph) (map[string]float64, error) {
	ids := g.Vertices()
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("Degree: %w", err)
		}
		out[id] = float64(d)
	}

	return out, nil
}

// Closeness scores every vertex by the reciprocal of its summed distance to
// the vertices it can reach (gonum network.Closeness over all shortest paths).
// Isolated vertices score 0.
func Closeness(g *core.Graph) (map[string]float64, error) {
	v, err := newGonumView(g)
	if err != nil {
		return nil, fmt.Errorf("Closeness: %w", err)
	}
	var gg graph.Graph = v.undir
	paths := path.DijkstraAllPaths(gg)

	return v.relabel(network.Closeness(gg, paths)), nil
}

// Betweenness scores every vertex by its shortest-path betweenness
// (gonum network.Betweenness, Brandes' algorithm).
func Betweenness(g *core.Graph) (map[string]float64, error) {
	v, err := newGonumView(g)
	if err != nil {
		return nil, fmt.Errorf("Betweenness: %w", err)
	}

	return v.relabel(network.Betweenness(v.undir)), nil
}

// PageRank scores every vertex by its PageRank on the symmetric directed
// version of g.
func PageRank(g *core.Graph) (map[string]float64, error) {
	v, err := newGonumView(g)
	if err != nil {
		return nil, fmt.Errorf("PageRank: %w", err)
	}
	if len(v.ids) == 0 {
		return map[string]float64{}, nil
	}

	return v.relabel(network.PageRank(v.directed(), pageRankDamping, pageRankTolerance)), nil
}

// Clustering scores every vertex by its local clustering coefficient.
func Clustering(g *core.Graph) (map[string]float64, error) {
	ids := g.Vertices()
	out := make(map[string]float64, len(ids))
	for _, id := range ids {
		c, err := ClusteringCoefficient(g, id)
		if err != nil {
			return nil, err
		}
		out[id] = c
	}

	return out, nil
}
