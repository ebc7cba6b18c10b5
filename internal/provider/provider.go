// Package provider supplies the raw inputs of an evaluation: SEO metrics
// and page text for a domain. Sources are pluggable; none of them fetch
// from the network.
package provider

import (
	"context"

	"github.com/ppiankov/domainhunter/internal/model"
)

// SEOProvider returns SEO metrics for a domain. A nil result with a nil
// error means the provider has no data for the domain.
type SEOProvider interface {
	Metrics(ctx context.Context, domain string) (*model.SeoMetrics, error)
}

// ContentProvider returns historical and current page text for a domain.
// Empty strings mean no text is available.
type ContentProvider interface {
	Content(ctx context.Context, domain string) (historical, current string, err error)
}

// NoSEO is an SEOProvider that never has data.
type NoSEO struct{}

// Metrics always reports absence.
func (NoSEO) Metrics(ctx context.Context, domain string) (*model.SeoMetrics, error) {
	return nil, ctx.Err()
}

// StaticContent is a ContentProvider that returns the same text for every domain.
type StaticContent struct {
	Historical string
	Current    string
}

// Content returns the configured text.
func (s StaticContent) Content(ctx context.Context, domain string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	return s.Historical, s.Current, nil
}
