package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ExpiresAfterTTL(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewCache[int](15*time.Minute, clock)

	_, ok := c.Get()
	assert.False(t, ok, "empty cache must miss")

	c.Set(42)
	v, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	now = now.Add(14 * time.Minute)
	_, ok = c.Get()
	assert.True(t, ok, "still fresh just before TTL")

	now = now.Add(time.Minute)
	_, ok = c.Get()
	assert.False(t, ok, "expired exactly at TTL")
}

func TestCache_SetReplacesWholesale(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache[map[string]float64](time.Minute, func() time.Time { return now })

	c.Set(map[string]float64{"EUR": 0.9})
	c.Set(map[string]float64{"INR": 83.25})

	v, ok := c.Get()
	require.True(t, ok)
	assert.NotContains(t, v, "EUR")
	assert.Equal(t, 83.25, v["INR"])
}

func TestKeyedCache_PerKeyExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	c := NewKeyedCache[string](time.Hour, clock)

	c.Set("203.0.113.7", "IN")
	now = now.Add(30 * time.Minute)
	c.Set("198.51.100.2", "DE")

	v, ok := c.Get("203.0.113.7")
	require.True(t, ok)
	assert.Equal(t, "IN", v)

	now = now.Add(31 * time.Minute)
	_, ok = c.Get("203.0.113.7")
	assert.False(t, ok, "first entry expired")
	_, ok = c.Get("198.51.100.2")
	assert.True(t, ok, "second entry still fresh")
}

func TestKeyedCache_PrunesExpiredOnSet(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewKeyedCache[int](time.Minute, func() time.Time { return now })

	c.Set("a", 1)
	c.Set("b", 2)
	now = now.Add(2 * time.Minute)
	c.Set("c", 3)

	assert.Equal(t, 1, c.Len(), "expired entries pruned on write")
}
