package gridgraph

import (
	"sync"

	"github.com/katalvlaran/slopeplan/core"
	"github.com/katalvlaran/slopeplan/terrain"
)

// cacheKey identifies a built graph. Terrain identity is its pointer: a
// Terrain is immutable, so the same pointer always yields the same graph.
type cacheKey struct {
	transform string
	terrain   *terrain.Terrain
	conn      Connectivity
}

// Cache memoises Build results keyed by (transform key, terrain, connectivity).
// It is safe for concurrent use. The zero value is not usable; call NewCache.
type Cache struct {
	mu     sync.RWMutex
	graphs map[cacheKey]*core.Graph
	hits   int
	misses int
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{graphs: make(map[cacheKey]*core.Graph)}
}

// Graph returns the graph for (key, t, options), building it with fn on first
// use. key must uniquely name fn: two different transforms under the same key
// would alias. Build errors are returned and nothing is cached.
func (c *Cache) Graph(key string, t *terrain.Terrain, fn EdgeCostFn, opts ...Option) (*core.Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := cacheKey{transform: key, terrain: t, conn: cfg.Conn}

	c.mu.RLock()
	g, ok := c.graphs[k]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()

		return g, nil
	}

	g, err := Build(t, fn, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	// Another caller may have built the same graph meanwhile; keep the first.
	if prev, exists := c.graphs[k]; exists {
		return prev, nil
	}
	c.graphs[k] = g

	return g, nil
}

// Hits returns how many Graph calls were served from the cache.
func (c *Cache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits
}

// Misses returns how many Graph calls had to build.
func (c *Cache) Misses() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.misses
}

// Len returns the number of cached graphs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.graphs)
}

// Reset drops every cached graph and zeroes the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graphs = make(map[cacheKey]*core.Graph)
	c.hits, c.misses = 0, 0
}
