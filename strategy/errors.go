// SPDX-License-Identifier: MIT

package strategy

import "errors"

// Sentinel errors for seed selection.
var (
	// ErrTooManySeeds indicates NumSeeds exceeds the number of vertices.
	ErrTooManySeeds = errors.New("strategy: more seeds than vertices")

	// ErrPoolTooSmall indicates a candidate pool smaller than NumSeeds.
	ErrPoolTooSmall = errors.New("strategy: candidate pool smaller than seed count")

	// ErrSearchExhausted indicates the adversarial search spent its attempt
	// budget without finding a winning seed set.
	ErrSearchExhausted = errors.New("strategy: search budget exhausted")

	// ErrDrawBudget indicates random draws failed to collect enough distinct
	// vertices within their cap.
	ErrDrawBudget = errors.New("strategy: draw budget exhausted")
)
