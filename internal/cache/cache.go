// Package cache provides a small generic cache with a soft size limit.
//
// When an insertion pushes the cache over its limit, the least recently
// used quarter of the entries is dropped in one pass, so eviction work is
// done rarely instead of on every insert.
//
//	outlines := cache.New[sfnt.GlyphIndex, []Segment](256)
//	segs, err := outlines.GetOrLoad(id, func() ([]Segment, error) { ... })
package cache

import (
	"cmp"
	"slices"
	"sync"
)

// Cache maps keys to values and evicts the oldest entries once it holds
// more than its limit. A Cache is safe for concurrent use and must not be
// copied after first use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	clock   uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// New returns a cache holding about limit entries. A limit of 0 or less
// never evicts.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]*entry[V]), limit: limit}
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// load runs with the cache locked, so concurrent misses on one key load it
// once. Errors are returned and not cached.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock++
	if e, ok := c.entries[key]; ok {
		e.used = c.clock
		return e.value, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.entries[key] = &entry[V]{value: v, used: c.clock}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return v, nil
}

// evict trims the cache to three quarters of its limit, oldest first.
// Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	keep := max(c.limit*3/4, 1)
	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int { return cmp.Compare(a.used, b.used) })
	for _, a := range all[:len(all)-keep] {
		delete(c.entries, a.key)
	}
}
