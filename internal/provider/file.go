package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/util"
)

// FileSEO serves metrics exported from an SEO tool into a YAML file:
//
//	example.com:
//	  domain_authority: 42
//	  backlinks: 1200
//	  trust_flow: 18
//
// Domains missing from the file have no data.
type FileSEO struct {
	metrics map[string]model.SeoMetrics
}

// LoadFileSEO reads a metrics file. Keys are normalized, so "https://www.Example.com/"
// and "example.com" refer to the same entry.
func LoadFileSEO(path string) (*FileSEO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metrics file: %w", err)
	}
	return ParseFileSEO(data)
}

// ParseFileSEO parses metrics YAML.
func ParseFileSEO(data []byte) (*FileSEO, error) {
	var raw map[string]model.SeoMetrics
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse metrics file: %w", err)
	}

	metrics := make(map[string]model.SeoMetrics, len(raw))
	for name, m := range raw {
		domain, err := util.NormalizeDomain(name)
		if err != nil {
			log.Warn().Str("entry", name).Err(err).Msg("skipping metrics entry with invalid domain")
			continue
		}
		metrics[domain] = m
	}

	return &FileSEO{metrics: metrics}, nil
}

// Metrics returns the metrics recorded for domain, or nil if there are none.
func (f *FileSEO) Metrics(ctx context.Context, domain string) (*model.SeoMetrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, ok := f.metrics[strings.ToLower(domain)]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

// Len returns the number of domains in the file.
func (f *FileSEO) Len() int {
	return len(f.metrics)
}
