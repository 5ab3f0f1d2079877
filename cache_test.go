package chatprep

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheAddGet(t *testing.T) {
	t.Parallel()

	c := NewCache(3)
	c.Add("a", "1")
	c.Add("b", "2")

	if got, ok := c.Get("a"); !ok || got != "1" {
		t.Errorf("Get(a) = %q, %v, want %q, true", got, ok, "1")
	}
	if got, ok := c.Get("missing"); ok {
		t.Errorf("Get(missing) = %q, %v, want absent", got, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheEvictsOldestInserted(t *testing.T) {
	t.Parallel()

	c := NewCache(DefaultCacheCapacity)
	for i := 1; i <= DefaultCacheCapacity+1; i++ {
		c.Add(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
	}

	if c.Len() != DefaultCacheCapacity {
		t.Errorf("Len() = %d, want %d", c.Len(), DefaultCacheCapacity)
	}
	if _, ok := c.Get("key-1"); ok {
		t.Error("key-1 should have been evicted")
	}
	if _, ok := c.Get("key-51"); !ok {
		t.Error("key-51 should be present")
	}
	for i := 2; i <= DefaultCacheCapacity+1; i++ {
		if _, ok := c.Get(fmt.Sprintf("key-%d", i)); !ok {
			t.Errorf("key-%d should be present", i)
		}
	}
}

func TestCacheReAddKeepsEvictionOrder(t *testing.T) {
	t.Parallel()

	c := NewCache(2)
	c.Add("a", "1")
	c.Add("b", "2")

	// Updating a does not refresh its insertion position.
	c.Add("a", "updated")
	if got, _ := c.Get("a"); got != "updated" {
		t.Errorf("Get(a) = %q, want %q", got, "updated")
	}

	// a is still the oldest, so it goes first.
	c.Add("c", "3")
	if _, ok := c.Get("a"); ok {
		t.Error("a should have been evicted despite the re-add")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("b should still be present")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should be present")
	}
}

func TestCacheClear(t *testing.T) {
	t.Parallel()

	c := NewCache(2)
	c.Add("a", "1")
	c.Add("b", "2")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("a should be gone after Clear")
	}

	// The cache stays usable and evicts correctly after Clear.
	c.Add("x", "1")
	c.Add("y", "2")
	c.Add("z", "3")
	if _, ok := c.Get("x"); ok {
		t.Error("x should have been evicted after refill")
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	t.Parallel()

	if got := NewCache(0).Capacity(); got != DefaultCacheCapacity {
		t.Errorf("NewCache(0).Capacity() = %d, want %d", got, DefaultCacheCapacity)
	}
	if got := NewCache(-5).Capacity(); got != DefaultCacheCapacity {
		t.Errorf("NewCache(-5).Capacity() = %d, want %d", got, DefaultCacheCapacity)
	}
	if got := NewCache(7).Capacity(); got != 7 {
		t.Errorf("NewCache(7).Capacity() = %d, want 7", got)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := NewCache(10)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("key-%d", i%20)
				c.Add(key, fmt.Sprintf("g%d-%d", g, i))
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 10 {
		t.Errorf("Len() = %d, want <= capacity 10", c.Len())
	}
}

func TestContentKey(t *testing.T) {
	t.Parallel()

	a := ContentKey("hello")
	b := ContentKey("hello")
	if a != b {
		t.Errorf("ContentKey not deterministic: %q vs %q", a, b)
	}
	if ContentKey("hello") == ContentKey("world") {
		t.Error("distinct content should produce distinct keys")
	}
	if len(a) != 64 {
		t.Errorf("ContentKey length = %d, want 64 hex chars", len(a))
	}
}
