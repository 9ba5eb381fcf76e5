package repository

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/ridelabs/drivescore/internal/pkg/models"
	"github.com/ridelabs/drivescore/services/roadclass"
)

// memoryCache is a fixed-capacity LRU cache with lazy TTL expiry. Expired
// entries read as absent and are evicted when touched or when capacity
// pressure pushes them out.
type memoryCache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	capacity int
	ttl      time.Duration
	hits     int64
	misses   int64
	now      func() time.Time
}

type cacheEntry struct {
	key        string
	onRoad     bool
	recordedAt time.Time
}

// NewMemoryCache creates an in-process classification cache
func NewMemoryCache(capacity int, ttl time.Duration) roadclass.ClassificationCache {
	if capacity <= 0 {
		capacity = 4096
	}
	return &memoryCache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the cached classification if a live entry exists
func (c *memoryCache) Get(_ context.Context, key string) (bool, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return false, false, nil
	}

	entry := elem.Value.(*cacheEntry)
	if c.now().Sub(entry.recordedAt) >= c.ttl {
		// Expired entries are treated as absent
		c.order.Remove(elem)
		delete(c.entries, key)
		c.misses++
		return false, false, nil
	}

	c.order.MoveToFront(elem)
	c.hits++
	return entry.onRoad, true, nil
}

// Put stores a classification, evicting the least recently used entry when
// the cache is full
func (c *memoryCache) Put(_ context.Context, key string, onRoad bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.onRoad = onRoad
		entry.recordedAt = c.now()
		c.order.MoveToFront(elem)
		return nil
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	elem := c.order.PushFront(&cacheEntry{
		key:        key,
		onRoad:     onRoad,
		recordedAt: c.now(),
	})
	c.entries[key] = elem
	return nil
}

// Clear drops all entries and resets the counters
func (c *memoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element)
	c.order.Init()
	c.hits = 0
	c.misses = 0
	return nil
}

// Stats reports entry count and the hit/miss counters
func (c *memoryCache) Stats(_ context.Context) (models.CacheStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := models.CacheStats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats, nil
}
