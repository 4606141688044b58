package cache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"
)

// Item represents a cached value with expiration time.
type Item struct {
	V   any
	Exp int64 // unix nanoseconds; 0 = no expiry
}

// Cache is a bounded in-memory TTL cache safe for concurrent use.
// When full, the least recently used entry is evicted.
type Cache struct {
	mu       sync.Mutex
	items    map[string]*entry
	order    *list.List // MRU at front, LRU at back
	maxItems int        // 0 = unlimited
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	key  string
	item Item
	elem *list.Element
}

// New creates a cache holding at most maxItems entries. A positive janitor
// interval starts a goroutine sweeping expired entries until Close.
func New(maxItems int, janitor time.Duration) *Cache {
	if maxItems < 0 {
		maxItems = 0
	}
	c := &Cache{
		items:    make(map[string]*entry),
		order:    list.New(),
		maxItems: maxItems,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if janitor > 0 {
		go c.janitor(janitor)
	}
	return c
}

// Close stops the janitor. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Get returns value and whether it exists and not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.liveNoLock(key)
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(e.elem)
	return e.item.V, true
}

// Set sets a value with TTL. ttl<=0 means no expiry.
func (c *Cache) Set(key string, v any, ttl time.Duration) {
	c.mu.Lock()
	c.setNoLock(key, v, ttl)
	c.mu.Unlock()
}

// GetOrCreate returns the live value for key, or stores create() under it.
// Either way the entry's TTL restarts, so only idle entries expire.
func (c *Cache) GetOrCreate(key string, ttl time.Duration, create func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.liveNoLock(key); ok {
		e.item.Exp = c.expiry(ttl)
		c.order.MoveToFront(e.elem)
		return e.item.V
	}
	v := create()
	c.setNoLock(key, v, ttl)
	return v
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	c.removeNoLock(key)
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired ones included until swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// janitor periodically removes expired items.
func (c *Cache) janitor(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	now := c.now().UnixNano()
	c.mu.Lock()
	for k, e := range c.items {
		if e.item.Exp != 0 && e.item.Exp < now {
			c.removeNoLock(k)
		}
	}
	c.mu.Unlock()
}

// KeyFromStrings creates a compact stable key from parts.
func KeyFromStrings(parts ...string) string {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(p))
	}
	return string(h.Sum(nil))
}

func (c *Cache) expiry(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return c.now().Add(ttl).UnixNano()
}

// liveNoLock returns the entry if present and unexpired, lazily dropping it
// otherwise; caller must hold c.mu.
func (c *Cache) liveNoLock(key string) (*entry, bool) {
	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if e.item.Exp != 0 && e.item.Exp < c.now().UnixNano() {
		c.removeNoLock(key)
		return nil, false
	}
	return e, true
}

// setNoLock stores v and enforces capacity; caller must hold c.mu.
func (c *Cache) setNoLock(key string, v any, ttl time.Duration) {
	item := Item{V: v, Exp: c.expiry(ttl)}
	if e, ok := c.items[key]; ok {
		e.item = item
		c.order.MoveToFront(e.elem)
		return
	}
	e := &entry{key: key, item: item}
	e.elem = c.order.PushFront(e)
	c.items[key] = e
	for c.maxItems > 0 && c.order.Len() > c.maxItems {
		c.evictLRUNoLock()
	}
}

// removeNoLock removes key from map/list; caller must hold c.mu.
func (c *Cache) removeNoLock(key string) {
	if e, ok := c.items[key]; ok {
		c.order.Remove(e.elem)
		delete(c.items, key)
	}
}

// evictLRUNoLock removes one LRU entry; caller must hold c.mu.
func (c *Cache) evictLRUNoLock() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	if e, ok := back.Value.(*entry); ok {
		delete(c.items, e.key)
	}
}
