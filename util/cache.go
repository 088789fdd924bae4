package util

import (
	"sync"
	"time"
)

type cacheEntry struct {
	val    interface{}
	expiry time.Time
}

// Cache is a size-bounded map whose entries expire after a fixed TTL.
// Expired entries are dropped lazily on access. When the cache is full, Set
// evicts expired entries first and then the entry closest to expiry.
type Cache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	entries    map[string]*cacheEntry
	mtx        sync.Mutex
}

func NewCache(ttl time.Duration, maxEntries int) *Cache {
	return &Cache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		entries:    make(map[string]*cacheEntry),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiry) {
		delete(c.entries, key)
		return nil, false
	}
	return e.val, true
}

func (c *Cache) Set(key string, val interface{}) {
	if val == nil {
		panic("cache values cannot be nil")
	}
	c.mtx.Lock()
	defer c.mtx.Unlock()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evict()
	}
	c.entries[key] = &cacheEntry{
		val:    val,
		expiry: c.now().Add(c.ttl),
	}
}

func (c *Cache) Del(key string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.entries, key)
}

func (c *Cache) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.entries)
}

func (c *Cache) evict() {
	now := c.now()
	var oldestKey string
	var oldest time.Time
	for k, e := range c.entries {
		if !now.Before(e.expiry) {
			delete(c.entries, k)
			continue
		}
		if oldestKey == "" || e.expiry.Before(oldest) {
			oldestKey = k
			oldest = e.expiry
		}
	}
	if len(c.entries) >= c.maxEntries && oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}
