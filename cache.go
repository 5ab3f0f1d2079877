package chatprep

import (
	"encoding/hex"
	"sync"

	"github.com/zeebo/blake3"
)

// DefaultCacheCapacity bounds the preprocessing cache when no explicit
// capacity is configured.
const DefaultCacheCapacity = 50

// Cache is a fixed-capacity key/value store that evicts the
// oldest-inserted entry first. Re-adding an existing key updates its
// value without refreshing its position in the eviction order. All
// methods are safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string
}

// NewCache creates a cache holding at most capacity entries. A capacity
// of zero or less falls back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
	}
}

// Add stores value under key. When a new key would exceed capacity, the
// single oldest-inserted entry is evicted first.
func (c *Cache) Add(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Get returns the cached value for key and whether it was present.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[key]
	return value, ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the configured entry bound.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Clear empties the store and its order tracking atomically.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string, c.capacity)
	c.order = c.order[:0]
}

// ContentKey derives a cache key from content alone, for callers without
// a natural message id.
func ContentKey(content string) string {
	sum := blake3.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
