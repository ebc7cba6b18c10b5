// Package content derives niche, quality, spam, sentiment, readability and
// keyword signals from a domain's historical and current page text.
package content

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ppiankov/domainhunter/internal/brand"
	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/util"
)

// DefaultMaxHistoricalChars bounds the historical excerpt kept on ContentSignals.
const DefaultMaxHistoricalChars = 1000

// Analyzer runs the content heuristics. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	maxHistoricalChars int
}

// NewAnalyzer creates an analyzer. maxHistoricalChars <= 0 selects the default.
func NewAnalyzer(maxHistoricalChars int) *Analyzer {
	if maxHistoricalChars <= 0 {
		maxHistoricalChars = DefaultMaxHistoricalChars
	}
	return &Analyzer{maxHistoricalChars: maxHistoricalChars}
}

// Analyze derives ContentSignals for domain from its page text.
// When both texts are blank, or analysis fails outright, the deterministic
// Fallback bundle for domain is returned instead.
func (a *Analyzer) Analyze(domain, historical, current string) (signals model.ContentSignals) {
	combined := historical + " " + current
	if strings.TrimSpace(combined) == "" {
		log.Debug().Str("domain", domain).Msg("no content available, using fallback signals")
		return Fallback(domain)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("domain", domain).Interface("panic", r).Msg("content analysis failed, using fallback signals")
			signals = Fallback(domain)
		}
	}()

	start := time.Now()

	signals = model.ContentSignals{
		Niche:             guard(domain, "niche", model.NicheUnknown, func() string { return classifyNiche(combined) }),
		ContentQuality:    guard(domain, "quality", 50, func() int { return assessQuality(combined) }),
		SpamScore:         guard(domain, "spam", 0, func() int { return spamScore(combined) }),
		BrandabilityScore: guard(domain, "brandability", brand.Neutral, func() int { return brand.Score(util.DomainLabel(domain)) }),
		Readability:       guard(domain, "readability", 50, func() int { return readability(combined) }),
		Sentiment:         guard(domain, "sentiment", model.NeutralSentiment(), func() model.Sentiment { return analyzeSentiment(combined) }),
		Keywords:          guard(domain, "keywords", []string{}, func() []string { return extractKeywords(combined) }),
		Language:          guard(domain, "language", "unknown", func() string { return detectLanguage(combined) }),
		HistoricalText:    truncateRunes(historical, a.maxHistoricalChars),
	}

	log.Debug().
		Str("domain", domain).
		Str("niche", signals.Niche).
		Int("quality", signals.ContentQuality).
		Int("spam", signals.SpamScore).
		Dur("took", time.Since(start)).
		Msg("content analyzed")

	return signals
}

// guard runs fn and returns fallback if it panics.
func guard[T any](domain, component string, fallback T, fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("domain", domain).
				Str("component", component).
				Interface("panic", r).
				Msg("content heuristic failed, using default")
			out = fallback
		}
	}()
	return fn()
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
