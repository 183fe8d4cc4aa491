package nav

import "sync"

// PageCache maps artist keys to already-extracted content fragments.
//
// Entries are written once by whichever of preload or on-demand fetch
// completes first for a key and are never invalidated for the
// lifetime of the process. Concurrent writers for the same key
// produce equivalent content, so the overwrite is a benign
// last-write-wins. There is no eviction and no size bound; the
// artist set is small and fixed.
type PageCache struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewPageCache creates an empty PageCache.
func NewPageCache() *PageCache {
	return &PageCache{m: make(map[string]string)}
}

// Get returns the cached fragment for key, if present.
func (c *PageCache) Get(key string) (string, bool) {
	c.mu.RLock()
	fragment, ok := c.m[key]
	c.mu.RUnlock()
	return fragment, ok
}

// Set stores a fragment under key. Overwrites are idempotent.
func (c *PageCache) Set(key, fragment string) {
	c.mu.Lock()
	c.m[key] = fragment
	c.mu.Unlock()
}

// Len returns the number of cached fragments.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
