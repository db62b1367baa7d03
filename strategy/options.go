// SPDX-License-Identifier: MIT

package strategy

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/pandemaniac/metrics"
)

// Defaults for the cached strategies.
const (
	DefaultPoolFactor    = 2
	DefaultPoolSize      = 25
	DefaultMaxAttempts   = 10_000_000
	DefaultWorkers       = 1
	DefaultProgressEvery = 100_000
)

// Option configures CompositeRank and BeatDegree.
type Option func(*options)

// options aggregates every knob of the cached strategies; each strategy
// reads the fields it needs.
type options struct {
	logger zerolog.Logger

	coarseName string
	coarse     metrics.Scores
	fineName   string
	fine       metrics.Scores
	poolFactor int

	poolSize      int
	maxAttempts   int64
	workers       int
	seed          int64
	progressEvery int64
}

func newOptions(opts ...Option) options {
	o := options{
		logger:        zerolog.Nop(),
		coarseName:    metrics.NameDegree,
		coarse:        metrics.Degree,
		fineName:      metrics.NameCloseness,
		fine:          metrics.Closeness,
		poolFactor:    DefaultPoolFactor,
		poolSize:      DefaultPoolSize,
		maxAttempts:   DefaultMaxAttempts,
		workers:       DefaultWorkers,
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCoarseMetric sets CompositeRank's pool metric. Panics on nil fn.
func WithCoarseMetric(name string, fn metrics.Scores) Option {
	if fn == nil {
		panic("strategy: WithCoarseMetric(nil)")
	}
	return func(o *options) { o.coarseName, o.coarse = name, fn }
}

// WithFineMetric sets CompositeRank's re-ranking metric. Panics on nil fn.
func WithFineMetric(name string, fn metrics.Scores) Option {
	if fn == nil {
		panic("strategy: WithFineMetric(nil)")
	}
	return func(o *options) { o.fineName, o.fine = name, fn }
}

// WithPoolFactor sets CompositeRank's pool size as a multiple of NumSeeds.
// Panics when f < 1.
func WithPoolFactor(f int) Option {
	if f < 1 {
		panic("strategy: WithPoolFactor < 1")
	}
	return func(o *options) { o.poolFactor = f }
}

// WithPoolSize sets BeatDegree's candidate pool size. Panics when n < 1.
func WithPoolSize(n int) Option {
	if n < 1 {
		panic("strategy: WithPoolSize < 1")
	}
	return func(o *options) { o.poolSize = n }
}

// WithMaxAttempts caps BeatDegree's oracle calls per search. Panics when n < 1.
func WithMaxAttempts(n int64) Option {
	if n < 1 {
		panic("strategy: WithMaxAttempts < 1")
	}
	return func(o *options) { o.maxAttempts = n }
}

// WithWorkers sets the number of concurrent search workers; values < 1
// mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithSeed seeds the candidate sampler.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithProgressEvery logs search progress every n attempts; 0 disables it.
func WithProgressEvery(n int64) Option {
	return func(o *options) { o.progressEvery = n }
}
