package vas

import (
	"sync"

	"github.com/tuneinsight/realroots/interval"
	"github.com/tuneinsight/realroots/utils"
)

// Cache stores the isolating intervals of previous isolations.
// Implementations must be safe for concurrent use.
type Cache interface {
	Load(key []byte) (intervals []interval.Interval, ok bool)
	Store(key []byte, intervals []interval.Interval)
}

// NullCache is a [Cache] that stores nothing.
type NullCache struct{}

// Load always misses.
func (NullCache) Load([]byte) ([]interval.Interval, bool) {
	return nil, false
}

// Store does nothing.
func (NullCache) Store([]byte, []interval.Interval) {}

// MemoryCache is an in-memory [Cache] evicting its oldest entry once full.
type MemoryCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]interval.Interval
	order    []string
}

// NewMemoryCache returns an empty MemoryCache holding at most capacity entries,
// or any number of entries if capacity is not positive.
func NewMemoryCache(capacity int) *MemoryCache {
	return &MemoryCache{
		capacity: capacity,
		entries:  map[string][]interval.Interval{},
	}
}

// Load returns a copy of the intervals stored under key.
func (c *MemoryCache) Load(key []byte) ([]interval.Interval, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	intervals, ok := c.entries[string(key)]
	if !ok {
		return nil, false
	}

	return utils.SliceClone(intervals), true
}

// Store stores a copy of intervals under key.
func (c *MemoryCache) Store(key []byte, intervals []interval.Interval) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := string(key)

	if _, ok := c.entries[k]; !ok {

		if c.capacity > 0 && len(c.order) >= c.capacity {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}

		c.order = append(c.order, k)
	}

	c.entries[k] = utils.SliceClone(intervals)
}

// Len returns the number of entries of the cache.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
