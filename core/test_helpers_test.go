// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pandemaniac/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pandemaniac/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// SquareListing is the 4-cycle 0-1-2-3-0 in graph-file form.
const SquareListing = `{"0": ["1", "3"], "1": ["0", "2"], "2": ["1", "3"], "3": ["0", "2"]}`

// MustGraph builds a graph from adj and fails the test on error.
func MustGraph(t *testing.T, adj core.Adjacency) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(adj)
	MustNoError(t, err, "NewGraph")

	return g
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want error %v, got %v", op, target, err)
	}
}

// MustEqualStrings FAILS the test if got and want differ element-wise.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustDegree FAILS the test unless Degree(id) == want.
func MustDegree(t *testing.T, g *core.Graph, id string, want int) {
	t.Helper()
	d, err := g.Degree(id)
	MustNoError(t, err, "Degree("+id+")")
	if d != want {
		t.Fatalf("Degree(%s) = %d; want %d", id, d, want)
	}
}
