package idempotency

import (
	"fmt"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

type CachedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

// Cache keeps a bounded number of captured responses and evicts the least
// recently used one when full.
type Cache struct {
	entries *lru.Cache[string, CachedResponse]
	flight  singleflight.Group
}

func NewCache(capacity int) (*Cache, error) {
	entries, err := lru.New[string, CachedResponse](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create idempotency cache: %w", err)
	}

	return &Cache{
		entries: entries,
	}, nil
}

func (c *Cache) Get(key string) (CachedResponse, bool) {
	return c.entries.Get(key)
}

func (c *Cache) Add(key string, response CachedResponse) {
	c.entries.Add(key, response)
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

// Do returns the response stored under key or runs produce to create it.
// Concurrent callers with the same key wait for a single produce call and
// share its result. produce reports whether its response may be stored.
func (c *Cache) Do(key string, produce func() (CachedResponse, bool)) CachedResponse {
	result, _, _ := c.flight.Do(key, func() (any, error) {
		if response, ok := c.entries.Get(key); ok {
			return response, nil
		}

		response, store := produce()
		if store {
			c.entries.Add(key, response)
		}

		return response, nil
	})

	return result.(CachedResponse)
}
