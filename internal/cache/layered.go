package cache

import (
	"errors"
	"time"
)

// LayeredCache checks a fast cache before a slow one and promotes slow hits.
type LayeredCache struct {
	fast Cache
	slow Cache
}

// NewLayeredCache layers a memory cache over a disk cache rooted at diskDir.
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		fast: NewMemoryCache(memoryTTL, 10*time.Minute),
		slow: NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks the fast layer, then the slow layer.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, found := c.fast.Get(key); found {
		return val, true
	}

	if val, found := c.slow.Get(key); found {
		_ = c.fast.Set(key, val, 0)
		return val, true
	}

	return nil, false
}

// Set stores a value in both layers.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.fast.Set(key, value, ttl); err != nil {
		return err
	}
	return c.slow.Set(key, value, ttl)
}

// Delete removes a value from both layers.
func (c *LayeredCache) Delete(key string) error {
	return errors.Join(c.fast.Delete(key), c.slow.Delete(key))
}

// Clear empties both layers.
func (c *LayeredCache) Clear() error {
	return errors.Join(c.fast.Clear(), c.slow.Clear())
}
