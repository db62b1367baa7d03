// SPDX-License-Identifier: MIT

package strategy

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/pandemaniac/game"
)

// seedCache memoizes seed sets by game Name.
//
// Concurrent misses for one key are collapsed with singleflight so the
// expensive computation runs once; all callers receive its result. Values
// are cloned on the way in and out.
type seedCache struct {
	mu      sync.RWMutex
	entries map[string]game.SeedSet
	flight  singleflight.Group
}

func newSeedCache() *seedCache {
	return &seedCache{entries: make(map[string]game.SeedSet)}
}

func (c *seedCache) get(id string) (game.SeedSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.entries[id]

	return s.Clone(), ok
}

func (c *seedCache) put(id string, s game.SeedSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = s.Clone()
}

// do runs fn once per key among concurrent callers.
func (c *seedCache) do(id string, fn func() (interface{}, error)) (interface{}, error) {
	v, err, _ := c.flight.Do(id, fn)

	return v, err
}

// invalidate drops the entry for id.
func (c *seedCache) invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// reset drops every entry.
func (c *seedCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *seedCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
