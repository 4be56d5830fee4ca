package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](2)

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	// "b" is now least recently used and is evicted.
	c.Set("c", 3)
	_, ok = c.Get("b")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())

	s := c.Stats()
	require.Equal(t, uint64(1), s.Evictions)
	require.Equal(t, uint64(1), s.Hits)
	require.Equal(t, uint64(2), s.Misses)
}

func TestCacheSetRefreshes(t *testing.T) {
	c := New[int, string](2)
	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(1, "uno")
	c.Set(3, "three")

	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, "uno", v)
	_, ok = c.Get(2)
	require.False(t, ok)
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	create := func() int { calls++; return 42 }

	require.Equal(t, 42, c.GetOrCreate(7, create))
	require.Equal(t, 42, c.GetOrCreate(7, create))
	require.Equal(t, 1, calls)
	require.InDelta(t, 0.5, c.Stats().HitRate, 1e-12)
}

func TestCacheDelete(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i*i)
	}
	require.True(t, c.Delete(0))
	require.True(t, c.Delete(3))
	require.False(t, c.Delete(3))
	require.Equal(t, 2, c.Len())

	c.Set(9, 81)
	v, ok := c.Get(1)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestCacheConcurrentGetOrCreate(t *testing.T) {
	c := New[int, int](8)
	var wg sync.WaitGroup
	for g := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				k := (g + i) % 12
				assert.Equal(t, k*2, c.GetOrCreate(k, func() int { return k * 2 }))
			}
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, c.Len(), 8)
}
