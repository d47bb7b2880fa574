package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheServesWithinWindow(t *testing.T) {
	current := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[string](time.Hour)
	c.now = func() time.Time { return current }

	c.Set("35.15,140.32:marine", "payload")

	got, ok := c.Get("35.15,140.32:marine")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)

	current = current.Add(59 * time.Minute)
	_, ok = c.Get("35.15,140.32:marine")
	assert.True(t, ok, "still inside the freshness window")
}

func TestTTLCacheExpiresOnWallClock(t *testing.T) {
	current := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[int](time.Hour)
	c.now = func() time.Time { return current }

	c.Set("k", 42)

	// Expiry is driven by the clock, not by access count.
	for i := 0; i < 10; i++ {
		_, ok := c.Get("k")
		assert.True(t, ok)
	}

	current = current.Add(time.Hour)
	_, ok := c.Get("k")
	assert.False(t, ok, "entry must expire exactly at the TTL boundary")
}

func TestTTLCacheMissForUnknownKey(t *testing.T) {
	c := NewTTLCache[string](time.Hour)
	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestTTLCacheSetPrunesExpiredEntries(t *testing.T) {
	current := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[string](time.Hour)
	c.now = func() time.Time { return current }

	c.Set("old", "stale")
	current = current.Add(2 * time.Hour)
	c.Set("new", "fresh")

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("new")
	assert.True(t, ok)
}

func TestTTLCacheOverwriteRefreshesExpiry(t *testing.T) {
	current := time.Date(2025, time.November, 7, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[string](time.Hour)
	c.now = func() time.Time { return current }

	c.Set("k", "v1")
	current = current.Add(45 * time.Minute)
	c.Set("k", "v2")
	current = current.Add(45 * time.Minute)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", got)
}
