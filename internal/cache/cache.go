// Package cache provides the in-memory result cache for processed images.
// Entries are keyed by the SHA-256 of the image bytes, bounded by a maximum
// entry count with least-recently-used eviction, and expire on an absolute
// TTL measured from insertion (not from last access). The cache is purely
// in-memory; contents are lost on restart.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/foxxcyber/ocr-gateway/internal/models"
)

// entry is the internal record for one cached result. The insertion
// timestamp is bookkeeping and never leaves the cache.
type entry struct {
	key        string
	value      models.OCRResult
	insertedAt time.Time
}

// Cache is a capacity-bounded, time-expiring store mapping content hashes to
// previously computed OCR results. Safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	entries    map[string]*list.Element
	order      *list.List // front = most recently used

	now func() time.Time // overridable in tests
}

// New creates a cache holding at most maxEntries results, each expiring ttl
// after insertion. maxEntries must be positive.
func New(maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		maxEntries: maxEntries,
		ttl:        ttl,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		now:        time.Now,
	}
}

// Get returns the cached result for key. An entry whose TTL has elapsed
// behaves as absent and is removed. A hit marks the entry as recently used.
func (c *Cache) Get(key string) (models.OCRResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return models.OCRResult{}, false
	}
	ent := elem.Value.(*entry)
	if c.expired(ent) {
		c.remove(elem)
		return models.OCRResult{}, false
	}
	c.order.MoveToFront(elem)
	return ent.value, true
}

// Put stores value under key, stamped with the current time. Storing an
// existing key overwrites it and resets its TTL. When the cache is at
// capacity and the key is new, exactly one entry is evicted: an expired
// entry at the LRU end if there is one, otherwise the least-recently-used
// entry.
func (c *Cache) Put(key string, value models.OCRResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = value
		ent.insertedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.maxEntries {
		c.evictOne()
	}

	elem := c.order.PushFront(&entry{
		key:        key,
		value:      value,
		insertedAt: c.now(),
	})
	c.entries[key] = elem
}

// Stats reports the current entry count and the configured bounds. Expired
// entries that have not yet been touched still count toward current_size;
// they disappear on access or eviction.
func (c *Cache) Stats() models.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.CacheStats{
		CurrentSize: c.order.Len(),
		MaxSize:     c.maxEntries,
		TTLSeconds:  int64(c.ttl / time.Second),
	}
}

// Len returns the number of resident entries, expired or not
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) expired(ent *entry) bool {
	return c.now().Sub(ent.insertedAt) >= c.ttl
}

// evictOne removes a single entry. Expired entries go first, scanning from
// the LRU end; if none are expired the least-recently-used entry goes.
// Callers must hold c.mu.
func (c *Cache) evictOne() {
	for elem := c.order.Back(); elem != nil; elem = elem.Prev() {
		if c.expired(elem.Value.(*entry)) {
			c.remove(elem)
			return
		}
	}
	if back := c.order.Back(); back != nil {
		c.remove(back)
	}
}

func (c *Cache) remove(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(c.entries, ent.key)
	c.order.Remove(elem)
}
