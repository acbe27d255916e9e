package cache

import "sync/atomic"

// ListCache holds the marshaled JSON of the full todo list so repeated
// reads skip re-marshaling. Writers must Invalidate after any mutation.
type ListCache struct {
	v atomic.Value // entry
}

type entry struct {
	b []byte
}

// NewListCache returns an empty (invalid) cache.
func NewListCache() *ListCache {
	c := &ListCache{}
	c.v.Store(entry{})
	return c
}

// Get returns the cached bytes, or (nil, false) when the cache is empty.
func (c *ListCache) Get() ([]byte, bool) {
	e := c.v.Load().(entry)
	if e.b == nil {
		return nil, false
	}
	return e.b, true
}

// Set stores marshaled list bytes.
func (c *ListCache) Set(b []byte) {
	c.v.Store(entry{b: b})
}

// Invalidate drops the cached bytes so the next read rebuilds from the store.
func (c *ListCache) Invalidate() {
	c.v.Store(entry{})
}
