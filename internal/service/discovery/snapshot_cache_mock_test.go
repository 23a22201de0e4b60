package discovery

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/heartmarshall/creatorhub-backend/internal/domain"
)

var _ snapshotCache = &memoryCache{}

// memoryCache is an in-memory snapshotCache that round-trips through JSON
// like the Redis implementation does.
type memoryCache struct {
	mu          sync.Mutex
	data        map[domain.ResourceType][]byte
	loadErr     error
	storeErr    error
	loads       int
	stores      int
	invalidated []domain.ResourceType
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[domain.ResourceType][]byte)}
}

func (c *memoryCache) Load(_ context.Context, resource domain.ResourceType, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads++
	if c.loadErr != nil {
		return false, c.loadErr
	}
	raw, ok := c.data[resource]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memoryCache) Store(_ context.Context, resource domain.ResourceType, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores++
	if c.storeErr != nil {
		return c.storeErr
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[resource] = raw
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, resource domain.ResourceType) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, resource)
	delete(c.data, resource)
	return nil
}

func (c *memoryCache) has(resource domain.ResourceType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[resource]
	return ok
}
