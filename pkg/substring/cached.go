package substring

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default number of FindAll results to keep.
const DefaultCacheSize = 256

// CachedIndex wraps an Index with LRU memoization of FindAll results.
// Queries are pure functions of the structure and the pattern, so cached
// results never go stale. The underlying cache is safe for concurrent use,
// matching the concurrency guarantee of the wrapped index.
type CachedIndex struct {
	inner Index
	cache *lru.Cache[string, []int]
}

var _ Index = (*CachedIndex)(nil)

// NewCached wraps inner with an LRU cache of up to size FindAll results.
// A non-positive size falls back to DefaultCacheSize.
func NewCached(inner Index, size int) *CachedIndex {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[string, []int](size)
	return &CachedIndex{
		inner: inner,
		cache: cache,
	}
}

// Contains reports whether pattern occurs in the indexed text. Membership
// walks are cheap, so Contains bypasses the cache and delegates directly.
func (c *CachedIndex) Contains(pattern string) bool {
	return c.inner.Contains(pattern)
}

// FindAll returns the occurrence starts of pattern, serving repeated
// patterns from the cache. The cached slice is never handed out directly:
// callers own their result and may mutate it freely.
func (c *CachedIndex) FindAll(pattern string) []int {
	if positions, ok := c.cache.Get(pattern); ok {
		return copyPositions(positions)
	}

	positions := c.inner.FindAll(pattern)
	c.cache.Add(pattern, copyPositions(positions))
	return positions
}

// DistinctSubstrings delegates to the wrapped index; the value is a single
// integer and needs no memoization.
func (c *CachedIndex) DistinctSubstrings() int64 {
	return c.inner.DistinctSubstrings()
}

// Len returns the number of cached FindAll results.
func (c *CachedIndex) Len() int {
	return c.cache.Len()
}

func copyPositions(positions []int) []int {
	out := make([]int, len(positions))
	copy(out, positions)
	return out
}
