// SPDX-License-Identifier: MIT

package strategy

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/pandemaniac/game"
)

// drawsPerSeed caps uniform draws at drawsPerSeed·k per sample.
const drawsPerSeed = 1000

// lockedRand is a *rand.Rand safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0,n).
func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rng.Intn(n)
}

// drawDistinct draws uniformly from pool into a set until it holds k ids.
// Duplicate draws are absorbed. It gives up after drawsPerSeed·k draws and
// reports false. The caller guarantees k ≤ len(pool).
func drawDistinct(r *lockedRand, pool []string, k int) (game.SeedSet, bool) {
	seen := make(map[string]struct{}, k)
	out := make(game.SeedSet, 0, k)
	for draws := 0; len(out) < k; draws++ {
		if draws >= drawsPerSeed*k {
			return nil, false
		}
		id := pool[r.Intn(len(pool))]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, true
}
