// SPDX-License-Identifier: MIT
// Package: pandemaniac/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, degree, m)
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (ErdosRenyi p, WattsStrogatz beta).
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidDegree indicates a degree-like parameter that is inconsistent with
// n (WattsStrogatz k odd or ≥ n, BarabasiAlbert m ≥ n).
var ErrInvalidDegree = errors.New("builder: invalid degree parameter")

// ErrConstructFailed indicates a programmer error in composition (nil
// constructor) or a construction that could not complete.
var ErrConstructFailed = errors.New("builder: construction failed")
