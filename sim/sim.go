// SPDX-License-Identifier: MIT

// Package sim is the contract with the external propagation simulator.
//
// The simulator is opaque: it receives the game's adjacency listing and one
// seed set per player label and returns an integer score per label. This
// package never models propagation; it only names the types and offers a
// few adapters (OracleFunc, Counted) used by strategies and the match runner.
package sim

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/pandemaniac/core"
	"github.com/katalvlaran/pandemaniac/game"
)

// labelPrefix is the player-label stem the simulator expects.
const labelPrefix = "strategy"

// ErrNilOracle indicates that a component was configured without an oracle.
var ErrNilOracle = errors.New("sim: nil oracle")

// Assignment maps a player label to that player's seeds.
type Assignment map[string]game.SeedSet

// Result maps a player label to its score.
type Result map[string]int

// Oracle runs one simulated match.
type Oracle interface {
	Run(ctx context.Context, adj core.Adjacency, a Assignment) (Result, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(ctx context.Context, adj core.Adjacency, a Assignment) (Result, error)

// Run calls f.
func (f OracleFunc) Run(ctx context.Context, adj core.Adjacency, a Assignment) (Result, error) {
	return f(ctx, adj, a)
}

// PlayerLabel returns the label of the i-th player, "strategy<i>".
func PlayerLabel(i int) string {
	return labelPrefix + strconv.Itoa(i)
}

// Counted wraps an Oracle and counts calls. Safe for concurrent use.
type Counted struct {
	Oracle Oracle
	calls  atomic.Int64
}

// NewCounted wraps o.
func NewCounted(o Oracle) *Counted {
	return &Counted{Oracle: o}
}

// Run forwards to the wrapped oracle.
func (c *Counted) Run(ctx context.Context, adj core.Adjacency, a Assignment) (Result, error) {
	c.calls.Add(1)

	return c.Oracle.Run(ctx, adj, a)
}

// Calls reports how many times Run was invoked.
func (c *Counted) Calls() int64 {
	return c.calls.Load()
}
