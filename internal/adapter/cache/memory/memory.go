package memory

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"todotrack/internal/core/port"
)

// memoryCache is the in-process fallback used when no redis address is
// configured. Same contract, no external dependency at runtime.
type memoryCache struct {
	cache *gocache.Cache
}

func New() port.CacheRepository {
	return &memoryCache{
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if value, found := c.cache.Get(key); found {
		return value.([]byte), nil
	}

	return nil, nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return nil
}

func (c *memoryCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}

	return nil
}

func (c *memoryCache) Close() error {
	c.cache.Flush()
	return nil
}
