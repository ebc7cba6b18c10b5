// Package pipeline evaluates domains end to end: provider lookups, content
// analysis, scoring, valuation and report rendering.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ppiankov/domainhunter/internal/cache"
	"github.com/ppiankov/domainhunter/internal/content"
	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/provider"
	"github.com/ppiankov/domainhunter/internal/score"
	"github.com/ppiankov/domainhunter/internal/util"
)

// Status thresholds.
const (
	HighValueScore     = 70.0
	SpamPenaltyCeiling = 30.0
)

// Evaluator orchestrates the evaluation of a single domain. It is safe for
// concurrent use; the scorer can be replaced at any time with UpdateWeights.
type Evaluator struct {
	seo      provider.SEOProvider
	content  provider.ContentProvider
	analyzer *content.Analyzer
	scorer   atomic.Pointer[score.Scorer]
	runID    string
	now      func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRunID stamps every report with id instead of a generated one.
func WithRunID(id string) Option {
	return func(e *Evaluator) { e.runID = id }
}

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// NewEvaluator creates an evaluator from its parts.
func NewEvaluator(seo provider.SEOProvider, contentProvider provider.ContentProvider, analyzer *content.Analyzer, scorer *score.Scorer, opts ...Option) *Evaluator {
	if seo == nil {
		seo = provider.NoSEO{}
	}
	if contentProvider == nil {
		contentProvider = provider.StaticContent{}
	}
	if analyzer == nil {
		analyzer = content.NewAnalyzer(0)
	}
	if scorer == nil {
		scorer = score.NewScorer()
	}

	e := &Evaluator{
		seo:      seo,
		content:  contentProvider,
		analyzer: analyzer,
		runID:    uuid.NewString(),
		now:      time.Now,
	}
	e.scorer.Store(scorer)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEvaluatorFromConfig wires providers, caching, analyzer and scorer
// according to cfg.
func NewEvaluatorFromConfig(cfg *model.Config, opts ...Option) (*Evaluator, error) {
	var seo provider.SEOProvider
	switch strings.ToLower(cfg.SEO.Provider) {
	case "", "mock":
		seo = provider.NewMockSEO()
	case "file":
		if cfg.SEO.MetricsFile == "" {
			return nil, fmt.Errorf("seo provider %q requires seo.metrics_file", cfg.SEO.Provider)
		}
		f, err := provider.LoadFileSEO(cfg.SEO.MetricsFile)
		if err != nil {
			return nil, fmt.Errorf("load seo metrics: %w", err)
		}
		seo = f
	case "none":
		seo = provider.NoSEO{}
	default:
		return nil, fmt.Errorf("unknown seo provider %q (want mock, file or none)", cfg.SEO.Provider)
	}

	var contentProvider provider.ContentProvider = provider.StaticContent{}
	if cfg.Content.DataDir != "" {
		contentProvider = provider.NewDirContent(cfg.Content.DataDir)
	}

	if cfg.Cache.Enabled {
		var c cache.Cache
		if cfg.Cache.DiskDir != "" {
			c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL)
		} else {
			c = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 2*cfg.Cache.MemoryTTL)
		}
		// A zero TTL lets each cache layer apply its own default.
		seo = provider.NewCachedSEO(seo, c, 0)
		contentProvider = provider.NewCachedContent(contentProvider, c, 0)
	}

	return NewEvaluator(
		seo,
		contentProvider,
		content.NewAnalyzer(cfg.Content.MaxHistoricalChars),
		score.NewScorerFromConfig(cfg.Scoring),
		opts...,
	), nil
}

// RunID returns the identifier stamped on reports from this evaluator.
func (e *Evaluator) RunID() string {
	return e.runID
}

// Scorer returns the scorer currently in use.
func (e *Evaluator) Scorer() *score.Scorer {
	return e.scorer.Load()
}

// UpdateWeights swaps in a scorer with new weights. In-flight evaluations
// finish with the scorer they started with. It reports false, and keeps the
// current weights, when u is missing a key.
func (e *Evaluator) UpdateWeights(u model.WeightUpdate) (model.Weights, bool) {
	for {
		current := e.scorer.Load()
		next, ok := current.UpdateWeights(u)
		if !ok {
			return current.Weights(), false
		}
		if e.scorer.CompareAndSwap(current, next) {
			return next.Weights(), true
		}
	}
}

// Request describes one evaluation. Empty text fields and a nil SEO are
// filled from the configured providers.
type Request struct {
	Domain     string
	Historical string
	Current    string
	SEO        *model.SeoMetrics
}

// Evaluate evaluates a domain using the configured providers.
func (e *Evaluator) Evaluate(ctx context.Context, domain string) (*model.Report, error) {
	return e.EvaluateRequest(ctx, Request{Domain: domain})
}

// EvaluateRequest evaluates a domain, preferring the data carried in req
// over provider lookups.
func (e *Evaluator) EvaluateRequest(ctx context.Context, req Request) (*model.Report, error) {
	domain, err := util.NormalizeDomain(req.Domain)
	if err != nil {
		return nil, err
	}

	signals, err := e.Collect(ctx, Request{
		Domain:     domain,
		Historical: req.Historical,
		Current:    req.Current,
		SEO:        req.SEO,
	})
	if err != nil {
		return nil, err
	}

	return e.Report(signals), nil
}

// Collect gathers the signal bundle for an already normalized domain.
func (e *Evaluator) Collect(ctx context.Context, req Request) (model.DomainSignals, error) {
	seo := req.SEO
	if seo == nil {
		m, err := e.seo.Metrics(ctx, req.Domain)
		if err != nil {
			return model.DomainSignals{}, fmt.Errorf("seo metrics for %s: %w", req.Domain, err)
		}
		seo = m
	}

	historical, current := req.Historical, req.Current
	if historical == "" && current == "" {
		h, c, err := e.content.Content(ctx, req.Domain)
		if err != nil {
			return model.DomainSignals{}, fmt.Errorf("content for %s: %w", req.Domain, err)
		}
		historical, current = h, c
	}

	contentSignals := e.analyzer.Analyze(req.Domain, historical, current)

	return model.DomainSignals{
		DomainName: req.Domain,
		SEO:        seo,
		Content:    &contentSignals,
	}, nil
}

// Report scores a signal bundle and assembles the report.
func (e *Evaluator) Report(signals model.DomainSignals) *model.Report {
	scorer := e.scorer.Load()
	breakdown := scorer.Breakdown(signals)
	value := scorer.EstimateValue(signals)

	report := &model.Report{
		Domain:      signals.DomainName,
		RunID:       e.runID,
		EvaluatedAt: e.now().UTC(),
		Status:      Status(breakdown),
		Signals:     signals,
		Breakdown:   breakdown,
		Value:       value,
	}

	log.Debug().
		Str("domain", report.Domain).
		Float64("score", breakdown.OverallScore).
		Float64("value", value.EstimatedValue).
		Str("status", string(report.Status)).
		Msg("domain evaluated")

	return report
}

// Status classifies a scored domain. Spam takes precedence over value.
func Status(b model.ScoreBreakdown) model.DomainStatus {
	switch {
	case b.ComponentScores.SpamPenalty > SpamPenaltyCeiling:
		return model.StatusSpam
	case b.OverallScore > HighValueScore:
		return model.StatusHighValue
	default:
		return model.StatusAnalyzed
	}
}

// Analyzer returns the content analyzer used for evaluations.
func (e *Evaluator) Analyzer() *content.Analyzer {
	return e.analyzer
}
