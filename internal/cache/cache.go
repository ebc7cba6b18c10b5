// Package cache stores provider responses in memory, on disk, or both.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a namespaced cache key for a lookup of the given kind,
// e.g. Key("seo", "example.com"). The subject is hashed so keys are safe
// to use as file names.
func Key(kind, subject string) string {
	hash := sha256.Sum256([]byte(subject))
	return "domainhunter:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}

// GetJSON decodes a cached JSON value into v. A missing or undecodable
// entry reports false.
func GetJSON(c Cache, key string, v any) bool {
	data, ok := c.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// SetJSON encodes v as JSON and stores it under key.
func SetJSON(c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return c.Set(key, data, ttl)
}
