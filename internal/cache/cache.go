// Package cache keeps encoded renders in memory.
//
// Entries are evicted least recently used first once the total size of
// the cached values exceeds the byte budget. Renders are pure functions
// of their key, so a cached value never goes stale.
package cache

import "sync"

// Key identifies one encoded render.
type Key struct {
	Seed   uint64
	Token  int64  // non-zero for token cards, whose label names the token
	Format string // "png", "svg", "card"
	Scale  int
}

// Cache is a byte-bounded LRU cache. It is safe for concurrent use and
// must not be copied after creation.
type Cache struct {
	mu       sync.Mutex
	maxBytes int
	bytes    int
	entries  map[Key]*entry
	list     lruList

	hits, misses, evictions uint64
}

// New creates a cache holding at most maxBytes of values.
// A maxBytes of 0 disables caching.
func New(maxBytes int) *Cache {
	return &Cache{
		maxBytes: maxBytes,
		entries:  make(map[Key]*entry),
	}
}

// Get returns the cached value for k. Callers must not modify it.
func (c *Cache) Get(k Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	c.list.moveToFront(e)
	return e.value, true
}

// Add stores v under k. Values larger than the whole budget are not kept.
func (c *Cache) Add(k Key, v []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(v) > c.maxBytes {
		return
	}
	if e, ok := c.entries[k]; ok {
		c.bytes += len(v) - len(e.value)
		e.value = v
		c.list.moveToFront(e)
	} else {
		e := &entry{key: k, value: v}
		c.entries[k] = e
		c.list.pushFront(e)
		c.bytes += len(v)
	}
	for c.bytes > c.maxBytes {
		old := c.list.back()
		c.list.remove(old)
		delete(c.entries, old.key)
		c.bytes -= len(old.value)
		c.evictions++
	}
}

// GetOrCreate returns the cached value for k, calling create on a miss.
// create runs without the lock held, so concurrent misses on the same key
// may each render; the last one stored wins.
func (c *Cache) GetOrCreate(k Key, create func() ([]byte, error)) ([]byte, error) {
	if v, ok := c.Get(k); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		return nil, err
	}
	c.Add(k, v)
	return v, nil
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats contains cache statistics.
type Stats struct {
	Entries   int
	Bytes     int
	MaxBytes  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Entries:   len(c.entries),
		Bytes:     c.bytes,
		MaxBytes:  c.maxBytes,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
