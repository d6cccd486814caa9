package cache

import "sync"

// EvictFunc is called for every entry removed by eviction, Delete or Drain.
// It runs after the cache lock is released.
type EvictFunc[K comparable, V any] func(key K, value V)

// Cache is a generic thread-safe LRU cache with soft limit.
// When the cache exceeds softLimit, oldest entries are evicted.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter
	onEvict   EvictFunc[K, V]
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64
}

// evicted is a removed entry waiting for its callback.
type evicted[K comparable, V any] struct {
	key   K
	value V
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited. onEvict may be nil.
func New[K comparable, V any](softLimit int, onEvict EvictFunc[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
		onEvict:   onEvict,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick

	return entry.value, true
}

// GetOrCreate returns the cached value or creates it.
// create is called under lock so a key is never created twice. A failed
// create leaves the cache unchanged.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		c.mu.Unlock()
		return entry.value, nil
	}

	value, err := create()
	if err != nil {
		c.mu.Unlock()
		var zero V
		return zero, err
	}

	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}

	var out []evicted[K, V]
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		out = c.evictOldest(key)
	}
	c.mu.Unlock()

	c.notify(out)
	return value, nil
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	if ok {
		c.notify([]evicted[K, V]{{key: key, value: entry.value}})
	}
	return ok
}

// Drain removes all entries, passing each to the eviction callback.
func (c *Cache[K, V]) Drain() {
	c.mu.Lock()
	out := make([]evicted[K, V], 0, len(c.entries))
	for key, e := range c.entries {
		out = append(out, evicted[K, V]{key: key, value: e.value})
	}
	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
	c.mu.Unlock()

	c.notify(out)
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the soft limit of the cache.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

func (c *Cache[K, V]) notify(out []evicted[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range out {
		c.onEvict(e.key, e.value)
	}
}

// evictOldest removes the least recently used entries until the cache is
// at three quarters of its soft limit. keep is never evicted.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest(keep K) []evicted[K, V] {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return nil
	}

	type entry struct {
		key   K
		atime int64
	}
	entries := make([]entry, 0, len(c.entries))
	for key, e := range c.entries {
		if key == keep {
			continue
		}
		entries = append(entries, entry{key: key, atime: e.atime})
	}

	// Selection sort is good enough for small batches.
	out := make([]evicted[K, V], 0, toEvict)
	for i := 0; i < toEvict && i < len(entries); i++ {
		minIdx := i
		for j := i + 1; j < len(entries); j++ {
			if entries[j].atime < entries[minIdx].atime {
				minIdx = j
			}
		}
		entries[i], entries[minIdx] = entries[minIdx], entries[i]

		key := entries[i].key
		out = append(out, evicted[K, V]{key: key, value: c.entries[key].value})
		delete(c.entries, key)
	}
	return out
}
