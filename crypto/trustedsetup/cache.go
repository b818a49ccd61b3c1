package trustedsetup

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vocdoni/davinci-kzg/log"
)

// DefaultCacheSize is the number of setups kept by a Cache created with a
// non-positive size.
const DefaultCacheSize = 8

type cacheKey struct {
	maxDegree   int
	maxOpenings int
}

// Cache memoizes the setups produced by a Generator, keyed by their sizes.
// Generating a setup is dominated by the group scalar multiplications, so
// repeated runs with the same parameters reuse the first result.
type Cache struct {
	gen Generator

	mu     sync.Mutex
	setups *lru.Cache[cacheKey, *Setup]
}

// NewCache wraps gen with an LRU cache holding up to size setups.
func NewCache(gen Generator, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	setups, err := lru.New[cacheKey, *Setup](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create setup cache: %w", err)
	}
	return &Cache{gen: gen, setups: setups}, nil
}

// Generate returns the cached setup for the given sizes, generating it on a
// miss. Concurrent callers asking for the same sizes share one generation.
func (c *Cache) Generate(maxDegree, maxOpenings int) (*Setup, error) {
	key := cacheKey{maxDegree: maxDegree, maxOpenings: maxOpenings}

	c.mu.Lock()
	defer c.mu.Unlock()
	if setup, ok := c.setups.Get(key); ok {
		log.Debugw("trusted setup cache hit", "maxDegree", maxDegree, "maxOpenings", maxOpenings)
		return setup, nil
	}
	setup, err := c.gen.Generate(maxDegree, maxOpenings)
	if err != nil {
		return nil, err
	}
	c.setups.Add(key, setup)
	return setup, nil
}

// Len returns the number of cached setups.
func (c *Cache) Len() int {
	return c.setups.Len()
}

var _ Generator = (*Cache)(nil)
