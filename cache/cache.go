package cache

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 128

// Cache is a bounded key/value store with LRU eviction and lazy TTL
// expiry. The zero value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	capacity   int
	defaultTTL time.Duration
	order      *list.List // front = most recently used
	items      map[K]*list.Element
	now        func() time.Time

	hits        atomic.Uint64
	misses      atomic.Uint64
	evictions   atomic.Uint64
	expirations atomic.Uint64
}

type entry[K comparable, V any] struct {
	key       K
	value     V
	createdAt time.Time
	ttl       time.Duration
}

// expired reports whether the entry's TTL has elapsed at time now.
// A non-positive TTL never expires.
func (e *entry[K, V]) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.createdAt) > e.ttl
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithClock sets the time source used for TTL checks. Intended for tests.
func WithClock[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.now = now
	}
}

// New creates a cache holding at most capacity entries, each expiring
// defaultTTL after insertion unless overridden per entry. A non-positive
// capacity falls back to DefaultCapacity; a non-positive defaultTTL means
// entries never expire.
func New[K comparable, V any](capacity int, defaultTTL time.Duration, opts ...Option[K, V]) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[K, V]{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		order:      list.New(),
		items:      make(map[K]*list.Element),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key if present and unexpired, promoting the
// entry to most-recently-used. An expired entry is removed and reported
// as a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		return zero, false
	}

	ent := el.Value.(*entry[K, V])
	if ent.expired(c.now()) {
		c.removeElement(el)
		c.expirations.Add(1)
		c.misses.Add(1)
		return zero, false
	}

	c.order.MoveToFront(el)
	c.hits.Add(1)
	return ent.value, true
}

// Has reports whether key is present and unexpired. It has the same side
// effects as Get: the entry is promoted, or removed if expired.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Set inserts or replaces the value for key using the default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL inserts or replaces the value for key with an explicit TTL.
// The entry becomes most-recently-used; if the insert pushes the cache
// over capacity, least-recently-used entries are evicted until it fits.
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry[K, V])
		ent.value = value
		ent.createdAt = now
		ent.ttl = ttl
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&entry[K, V]{
		key:       key,
		value:     value,
		createdAt: now,
		ttl:       ttl,
	})
	c.items[key] = el

	for len(c.items) > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
		c.evictions.Add(1)
	}
}

// Prune removes every expired entry regardless of recency and returns the
// number removed. Recency order of surviving entries is unchanged.
func (c *Cache[K, V]) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*entry[K, V]).expired(now) {
			c.removeElement(el)
			removed++
		}
		el = next
	}
	c.expirations.Add(uint64(removed))
	return removed
}

// Clear removes all entries unconditionally.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[K]*list.Element)
}

// Size returns the number of entries currently stored, including entries
// that have expired but not yet been touched or pruned.
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns all stored keys in recency order, most recently used first.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry[K, V]).key)
	}
	return keys
}

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Size        int
	Capacity    int
	Hits        uint64
	Misses      uint64
	Evictions   uint64
	Expirations uint64
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	size := len(c.items)
	capacity := c.capacity
	c.mu.Unlock()

	return Stats{
		Size:        size,
		Capacity:    capacity,
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		Expirations: c.expirations.Load(),
	}
}

// removeElement deletes an entry from both the map and the recency list.
// Must be called with the mutex held.
func (c *Cache[K, V]) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry[K, V]).key)
}
