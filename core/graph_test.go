// SPDX-License-Identifier: MIT

package core_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pandemaniac/core"
)

// TestNewGraph_Square covers the 4-cycle fixture read from JSON.
func TestNewGraph_Square(t *testing.T) {
	g, err := core.FromJSON([]byte(SquareListing))
	MustNoError(t, err, "FromJSON")

	if got := g.VertexCount(); got != 4 {
		t.Fatalf("VertexCount = %d; want 4", got)
	}
	if got := g.EdgeCount(); got != 4 {
		t.Fatalf("EdgeCount = %d; want 4", got)
	}
	MustDegree(t, g, "2", 2)

	nbrs, err := g.NeighborIDs("2")
	MustNoError(t, err, "NeighborIDs(2)")
	MustEqualStrings(t, nbrs, []string{"1", "3"}, "NeighborIDs(2)")
	MustEqualStrings(t, g.Vertices(), []string{"0", "1", "2", "3"}, "Vertices")
}

// TestNewGraph_Symmetrizes verifies a one-sided listing still yields an
// undirected edge.
func TestNewGraph_Symmetrizes(t *testing.T) {
	g := MustGraph(t, core.Adjacency{
		VertexA: {VertexB},
		VertexB: {},
	})
	if !g.HasEdge(VertexA, VertexB) || !g.HasEdge(VertexB, VertexA) {
		t.Fatalf("edge A–B must be visible from both endpoints")
	}
	MustDegree(t, g, VertexB, 1)
}

// TestNewGraph_DropsUnknownAndLoops checks tolerant construction.
func TestNewGraph_DropsUnknownAndLoops(t *testing.T) {
	g := MustGraph(t, core.Adjacency{
		VertexA: {VertexB, VertexX, VertexA},
		VertexB: {VertexA, VertexA},
	})
	MustDegree(t, g, VertexA, 1)
	MustDegree(t, g, VertexB, 1)
	if g.HasVertex(VertexX) {
		t.Fatalf("unknown neighbor %s must not become a vertex", VertexX)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("EdgeCount = %d; want 1", g.EdgeCount())
	}

	// The source listing keeps what the caller gave.
	src := g.Source()
	MustEqualStrings(t, src[VertexA], []string{VertexB, VertexX, VertexA}, "Source()[A]")
	// and the canonical listing does not.
	MustEqualStrings(t, g.AdjacencyList()[VertexA], []string{VertexB}, "AdjacencyList()[A]")
}

// TestNewGraph_EmptyID rejects an empty key.
func TestNewGraph_EmptyID(t *testing.T) {
	_, err := core.NewGraph(core.Adjacency{"": {VertexA}, VertexA: {}})
	MustErrorIs(t, err, core.ErrEmptyVertexID, "NewGraph")
}

// TestNewGraph_Nil yields an empty graph.
func TestNewGraph_Nil(t *testing.T) {
	g := MustGraph(t, nil)
	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Fatalf("nil listing must yield an empty graph")
	}
}

// TestQueries_MissingVertex covers ErrVertexNotFound.
func TestQueries_MissingVertex(t *testing.T) {
	g := MustGraph(t, core.Adjacency{VertexA: {}})
	_, err := g.Degree(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Degree")
	_, err = g.NeighborIDs(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "NeighborIDs")
	_, err = g.Vertex(VertexD)
	MustErrorIs(t, err, core.ErrVertexNotFound, "Vertex")
	if g.HasEdge(VertexD, VertexA) {
		t.Fatalf("HasEdge with a missing endpoint must be false")
	}
}

// TestSource_IsACopy ensures callers cannot mutate the graph through Source.
func TestSource_IsACopy(t *testing.T) {
	adj := core.Adjacency{VertexA: {VertexB}, VertexB: {VertexA}}
	g := MustGraph(t, adj)

	adj[VertexA][0] = VertexC
	src := g.Source()
	src[VertexB] = nil

	again := g.Source()
	MustEqualStrings(t, again[VertexA], []string{VertexB}, "Source()[A]")
	MustEqualStrings(t, again[VertexB], []string{VertexA}, "Source()[B]")
}

// TestParseAdjacency_Malformed covers the malformed-input class.
func TestParseAdjacency_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"array":        `["1","2"]`,
		"not json":     `{"1": [`,
		"number value": `{"1": 2}`,
		"int members":  `{"1": [2, 3]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := core.ParseAdjacency([]byte(payload))
			MustErrorIs(t, err, core.ErrMalformedAdjacency, name)
		})
	}
}

// TestReadAdjacency_NullNeighbors tolerates null as an isolated vertex.
func TestReadAdjacency_NullNeighbors(t *testing.T) {
	adj, err := core.ReadAdjacency(strings.NewReader(`{"A": null, "B": ["A"]}`))
	MustNoError(t, err, "ReadAdjacency")
	g := MustGraph(t, adj)
	MustDegree(t, g, VertexA, 1)
}

// TestAdjacency_Builders covers the construction helpers used by graph sources.
func TestAdjacency_Builders(t *testing.T) {
	adj := core.Adjacency{}
	adj.AddEdge(VertexA, VertexB)
	adj.AddEdge(VertexB, VertexA)
	adj.AddVertex(VertexC)

	MustEqualStrings(t, adj.Keys(), []string{VertexA, VertexB, VertexC}, "Keys")
	g := MustGraph(t, adj)
	if g.EdgeCount() != 1 {
		t.Fatalf("duplicate AddEdge must collapse; EdgeCount = %d", g.EdgeCount())
	}
	MustDegree(t, g, VertexC, 0)
}
