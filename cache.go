// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package bitfont

import (
	"github.com/gogpu/bitfont/internal/cache"
	"github.com/gogpu/bitfont/resource"
	"github.com/gogpu/bitfont/surface"
)

// DefaultCacheSize is the soft limit of a Cache created with size 0.
const DefaultCacheSize = 16

// Cache keeps one open Font per resource id.
//
// When more than the soft limit of fonts are open, the least recently
// used are closed. Fonts returned by a Cache belong to it: callers must
// not close them and must not keep them past Close.
//
// Cache is safe for concurrent use.
type Cache struct {
	provider resource.Provider
	screen   surface.PixelSurface
	opts     []Option
	fonts    *cache.Cache[resource.ID, *Font]
}

// NewCache creates a font cache. size is the soft limit on open fonts;
// 0 selects DefaultCacheSize. opts are applied to every font.
func NewCache(provider resource.Provider, screen surface.PixelSurface, size int, opts ...Option) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		provider: provider,
		screen:   screen,
		opts:     opts,
		fonts:    cache.New[resource.ID, *Font](size, closeEvicted),
	}
}

func closeEvicted(id resource.ID, f *Font) {
	if err := f.Close(); err != nil {
		f.log().Warn("bitfont: closing evicted font", "id", int(id), "err", err)
	}
}

// Font returns the font for id, loading it on first use.
func (c *Cache) Font(id resource.ID) (*Font, error) {
	return c.fonts.GetOrCreate(id, func() (*Font, error) {
		return New(c.provider, c.screen, id, c.opts...)
	})
}

// Len returns the number of open fonts.
func (c *Cache) Len() int {
	return c.fonts.Len()
}

// Purge closes and forgets the font for id. It reports whether the font
// was open.
func (c *Cache) Purge(id resource.ID) bool {
	return c.fonts.Delete(id)
}

// Close closes every font in the cache. The cache stays usable.
func (c *Cache) Close() {
	c.fonts.Drain()
}
