// Package cache provides a generic LRU cache with a soft limit.
//
// Entries carry an access tick; when an insertion pushes the cache past
// its soft limit, the least recently used quarter is evicted and handed to
// the eviction callback so owners can release what the values hold.
//
//	c := cache.New[int, *Font](8, func(id int, f *Font) { f.Close() })
//	f, err := c.GetOrCreate(id, func() (*Font, error) { return open(id) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
