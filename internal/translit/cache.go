package translit

import "sync"

// DefaultCacheLimit is the high-water mark after which the oldest half
// of cached conversions is discarded. The corpus has ~160k files with
// heavily repeated headings, so a bounded cache keeps the hit rate high
// without letting a full run grow without limit.
const DefaultCacheLimit = 50000

// Cache is an insertion-ordered, bounded conversion cache keyed by
// (text, locale). Safe for concurrent use within one process; never
// shared across locale contexts.
type Cache struct {
	mu    sync.Mutex
	limit int
	m     map[cacheKey]string
	order []cacheKey
}

type cacheKey struct {
	text   string
	locale string
}

func NewCache(limit int) *Cache {
	if limit <= 0 {
		limit = DefaultCacheLimit
	}
	return &Cache{limit: limit, m: make(map[cacheKey]string)}
}

func (c *Cache) Get(text, locale string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[cacheKey{text, locale}]
	return v, ok
}

func (c *Cache) Put(text, locale, converted string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := cacheKey{text, locale}
	if _, exists := c.m[k]; !exists {
		c.order = append(c.order, k)
	}
	c.m[k] = converted
	if len(c.m) > c.limit {
		c.evictOldestHalf()
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func (c *Cache) evictOldestHalf() {
	cut := len(c.order) / 2
	for _, k := range c.order[:cut] {
		delete(c.m, k)
	}
	c.order = append([]cacheKey(nil), c.order[cut:]...)
}
