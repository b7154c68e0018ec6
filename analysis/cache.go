package analysis

import (
	"sync"

	"github.com/tuneinsight/polyan/polynomial"
)

// DefaultCacheCapacity is the capacity of a Cache created with a non positive capacity.
const DefaultCacheCapacity = 128

// Cache memoizes the analyses of an Analyzer, keyed by the fingerprint of
// the polynomials. When full, the oldest entry is evicted.
// A Cache is safe for concurrent use.
type Cache struct {
	*Analyzer

	mu       sync.Mutex
	capacity int
	entries  map[[32]byte]*Analysis
	order    [][32]byte
}

// NewCache creates a new Cache over the given Analyzer holding at most capacity analyses.
func NewCache(analyzer *Analyzer, capacity int) *Cache {

	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	return &Cache{
		Analyzer: analyzer,
		capacity: capacity,
		entries:  make(map[[32]byte]*Analysis, capacity),
	}
}

// Get returns the analysis of p, computing it if it is not cached.
// The analysis is computed outside of the lock, so concurrent calls on
// the same polynomial may compute it more than once.
func (c *Cache) Get(p *polynomial.Polynomial) (an *Analysis, err error) {

	if p == nil {
		return c.Analyze(p)
	}

	key := p.Fingerprint()

	c.mu.Lock()
	an, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		return an, nil
	}

	if an, err = c.Analyze(p); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.entries[key]; ok {
		return cached, nil
	}

	if len(c.order) >= c.capacity {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}

	c.entries[key] = an
	c.order = append(c.order, key)

	return an, nil
}

// Len returns the number of cached analyses.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset empties the cache.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[[32]byte]*Analysis, c.capacity)
	c.order = nil
}
