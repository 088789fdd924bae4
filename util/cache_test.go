package util

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time {
	return f.t
}

func newTestCache(ttl time.Duration, max int) (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1234567890, 0)}
	c := NewCache(ttl, max)
	c.now = clock.now
	return c, clock
}

func TestCache_GetSetExpiry(t *testing.T) {
	c, clock := newTestCache(time.Minute, 10)
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 123)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 123, v)
	require.Panics(t, func() {
		c.Set("b", nil)
	})

	clock.t = clock.t.Add(time.Minute)
	_, ok = c.Get("a")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestCache_Del(t *testing.T) {
	c, _ := newTestCache(time.Minute, 10)
	c.Set("a", 1)
	c.Del("a")
	_, ok := c.Get("a")
	require.False(t, ok)
}

func TestCache_Eviction(t *testing.T) {
	c, clock := newTestCache(time.Minute, 2)
	c.Set("a", 1)
	clock.t = clock.t.Add(time.Second)
	c.Set("b", 2)
	clock.t = clock.t.Add(time.Second)
	c.Set("c", 3)
	require.Equal(t, 2, c.Len())
	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.True(t, ok)

	c.Set("b", 4)
	require.Equal(t, 2, c.Len())

	clock.t = clock.t.Add(2 * time.Minute)
	c.Set("d", 5)
	require.Equal(t, 1, c.Len())
}

func TestCache_Race(t *testing.T) {
	c := NewCache(250*time.Millisecond, 5)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Set(strconv.Itoa(i), "worker1")
				c.Get(strconv.Itoa(j))
			}
		}(i)
	}
	wg.Wait()
	require.True(t, c.Len() <= 5)
}
