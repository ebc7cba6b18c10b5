package provider

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ppiankov/domainhunter/internal/cache"
	"github.com/ppiankov/domainhunter/internal/model"
)

// CachedSEO memoizes another SEOProvider. Absent results are cached too,
// so a provider without data for a domain is asked only once per TTL.
type CachedSEO struct {
	next  SEOProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedSEO wraps next with c.
func NewCachedSEO(next SEOProvider, c cache.Cache, ttl time.Duration) *CachedSEO {
	return &CachedSEO{next: next, cache: c, ttl: ttl}
}

type seoEntry struct {
	Metrics *model.SeoMetrics `json:"metrics"`
}

// Metrics returns cached metrics or fetches and stores them.
func (c *CachedSEO) Metrics(ctx context.Context, domain string) (*model.SeoMetrics, error) {
	key := cache.Key("seo", domain)

	var entry seoEntry
	if cache.GetJSON(c.cache, key, &entry) {
		log.Debug().Str("domain", domain).Msg("seo cache hit")
		return entry.Metrics, nil
	}

	metrics, err := c.next.Metrics(ctx, domain)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(c.cache, key, seoEntry{Metrics: metrics}, c.ttl); err != nil {
		log.Warn().Str("domain", domain).Err(err).Msg("failed to cache seo metrics")
	}
	return metrics, nil
}

// CachedContent memoizes another ContentProvider.
type CachedContent struct {
	next  ContentProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedContent wraps next with c.
func NewCachedContent(next ContentProvider, c cache.Cache, ttl time.Duration) *CachedContent {
	return &CachedContent{next: next, cache: c, ttl: ttl}
}

type contentEntry struct {
	Historical string `json:"historical"`
	Current    string `json:"current"`
}

// Content returns cached text or fetches and stores it.
func (c *CachedContent) Content(ctx context.Context, domain string) (string, string, error) {
	key := cache.Key("content", domain)

	var entry contentEntry
	if cache.GetJSON(c.cache, key, &entry) {
		log.Debug().Str("domain", domain).Msg("content cache hit")
		return entry.Historical, entry.Current, nil
	}

	historical, current, err := c.next.Content(ctx, domain)
	if err != nil {
		return "", "", err
	}

	if err := cache.SetJSON(c.cache, key, contentEntry{Historical: historical, Current: current}, c.ttl); err != nil {
		log.Warn().Str("domain", domain).Err(err).Msg("failed to cache content")
	}
	return historical, current, nil
}
