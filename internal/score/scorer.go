// Package score turns DomainSignals into a weighted 0-100 score, a
// per-component breakdown with recommendations, and a resale value estimate.
package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ppiankov/domainhunter/internal/model"
)

// High-value niches earn the full niche bonus in the content sub-score.
var highValueNiches = map[string]bool{
	model.NicheTechnology: true,
	model.NicheFinance:    true,
	model.NicheHealth:     true,
	model.NicheBusiness:   true,
	model.NicheEducation:  true,
}

// Scorer computes domain scores under a fixed weight set.
//
// A Scorer is immutable: UpdateWeights returns a new Scorer and leaves the
// receiver untouched, so a Scorer may be shared freely between goroutines.
type Scorer struct {
	weights    model.Weights
	spamSource model.SpamSource
}

// NewScorer creates a scorer with default weights that reads both spam
// penalty terms from the content spam score.
func NewScorer() *Scorer {
	return &Scorer{
		weights:    model.DefaultWeights(),
		spamSource: model.SpamSourceContent,
	}
}

// NewScorerFromConfig creates a scorer from configuration.
// Weights are accepted as configured, without normalization.
func NewScorerFromConfig(cfg model.ScoringConfig) *Scorer {
	s := NewScorer()
	if cfg.Weights != (model.Weights{}) {
		s.weights = cfg.Weights
	}
	if cfg.SpamSource == model.SpamSourceSeparate {
		s.spamSource = model.SpamSourceSeparate
	}
	return s
}

// Weights returns the scorer's weights.
func (s *Scorer) Weights() model.Weights {
	return s.weights
}

// SpamSource returns where the second spam penalty term is read from.
func (s *Scorer) SpamSource() model.SpamSource {
	return s.spamSource
}

// UpdateWeights returns a scorer using the weights described by u.
// The SEO, content and brandability weights are normalized to sum to 1.0;
// the spam penalty weight is kept as given. If any key is missing it logs
// the failure and returns the receiver with ok=false.
func (s *Scorer) UpdateWeights(u model.WeightUpdate) (*Scorer, bool) {
	next, ok := s.weights.Apply(u)
	if !ok {
		log.Error().Strs("missing", u.Missing()).Msg("weight update rejected: missing required keys")
		return s, false
	}

	log.Info().Stringer("weights", next).Msg("updated scoring weights")
	return &Scorer{weights: next, spamSource: s.spamSource}, true
}

// Calculate returns the overall 0-100 score for signals. A non-nil override
// replaces the scorer's weights for this call only. Signals without a
// domain name score 0.
func (s *Scorer) Calculate(signals model.DomainSignals, override *model.Weights) (result float64) {
	if strings.TrimSpace(signals.DomainName) == "" {
		log.Warn().Msg("score requested for empty domain name")
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("domain", signals.DomainName).Interface("panic", r).Msg("score calculation failed")
			result = 0
		}
	}()

	w := s.weights
	if override != nil {
		w = *override
	}

	c := s.components(signals)
	overall := combine(c, w)

	log.Debug().
		Str("domain", signals.DomainName).
		Float64("score", overall).
		Float64("seo", c.SEO).
		Float64("content", c.Content).
		Float64("brandability", c.Brandability).
		Float64("spam_penalty", c.SpamPenalty).
		Msg("domain scored")

	return overall
}

// Breakdown recomputes every component for signals and explains the
// overall score with weighted contributions, signals and recommendations.
func (s *Scorer) Breakdown(signals model.DomainSignals) (breakdown model.ScoreBreakdown) {
	breakdown = model.ScoreBreakdown{
		DomainName:      signals.DomainName,
		Weights:         s.weights,
		Recommendations: []string{},
	}
	if strings.TrimSpace(signals.DomainName) == "" {
		return breakdown
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("domain", signals.DomainName).Interface("panic", r).Msg("score breakdown failed")
			breakdown.OverallScore = 0
			breakdown.Recommendations = []string{msgAnalysisError}
		}
	}()

	seo, seoSignal := seoScore(signals.SEO)
	content, contentSignal := contentScore(signals.Content)
	brandability, brandSignal := brandabilityScore(signals.Content)
	spam, spamSignal := s.spamPenalty(signals)

	c := model.ComponentScores{SEO: seo, Content: content, Brandability: brandability, SpamPenalty: spam}
	w := s.weights

	breakdown.OverallScore = combine(c, w)
	breakdown.ComponentScores = c
	breakdown.WeightedContributions = model.WeightedContributions{
		SEO:          c.SEO * w.SEO,
		Content:      c.Content * w.Content,
		Brandability: c.Brandability * w.Brandability,
		SpamPenalty:  c.SpamPenalty * w.SpamPenalty,
	}
	breakdown.Signals = []model.Signal{seoSignal, contentSignal, brandSignal, spamSignal}
	if trust, ok := trustRatioSignal(signals.SEO); ok {
		breakdown.Signals = append(breakdown.Signals, trust)
	}
	breakdown.Recommendations = recommend(signals, c, breakdown.OverallScore)

	return breakdown
}

func (s *Scorer) components(signals model.DomainSignals) model.ComponentScores {
	seo, _ := seoScore(signals.SEO)
	content, _ := contentScore(signals.Content)
	brandability, _ := brandabilityScore(signals.Content)
	spam, _ := s.spamPenalty(signals)
	return model.ComponentScores{SEO: seo, Content: content, Brandability: brandability, SpamPenalty: spam}
}

// combine applies weights and clamps to [0,100]. NaN collapses to 0.
func combine(c model.ComponentScores, w model.Weights) float64 {
	overall := c.SEO*w.SEO + c.Content*w.Content + c.Brandability*w.Brandability - c.SpamPenalty*w.SpamPenalty
	return clamp(overall, 0, 100)
}

// contentScore rates content signals from 0 to 100:
// quality/100*40 + niche bonus (30 high-value, 20 other known, 0 unknown)
// + readability/100*20 + compound*10 when sentiment is positive.
func contentScore(c *model.ContentSignals) (float64, model.Signal) {
	if c == nil {
		return 0, model.Signal{
			Type:        model.SignalContent,
			Severity:    model.SeverityWarning,
			Description: "No content signals available",
			Data:        map[string]interface{}{"score": 0.0, "formula": "no content"},
		}
	}

	quality := float64(c.ContentQuality) / 100 * 40

	niche := nicheBonus(c.Niche)

	readable := float64(c.Readability) / 100 * 20

	sentiment := 0.0
	if c.Sentiment.Compound > 0 {
		sentiment = math.Abs(c.Sentiment.Compound) * 10
	}

	total := quality + niche + readable + sentiment

	severity := model.SeverityInfo
	if total < 40 {
		severity = model.SeverityWarning
	}

	return total, model.Signal{
		Type:        model.SignalContent,
		Severity:    severity,
		Description: fmt.Sprintf("Content strength %.1f/100 (%s niche)", total, displayNiche(c.Niche)),
		Data: map[string]interface{}{
			"content_quality":    c.ContentQuality,
			"niche":              displayNiche(c.Niche),
			"readability":        c.Readability,
			"compound":           c.Sentiment.Compound,
			"quality_points":     quality,
			"niche_points":       niche,
			"readability_points": readable,
			"sentiment_points":   sentiment,
			"score":              total,
			"formula":            "quality/100*40 + niche_bonus + readability/100*20 + max(0,compound)*10",
		},
	}
}

func nicheBonus(niche string) float64 {
	switch {
	case niche == "" || niche == model.NicheUnknown:
		return 0
	case highValueNiches[niche]:
		return 30
	default:
		return 20
	}
}

func displayNiche(niche string) string {
	if niche == "" {
		return model.NicheUnknown
	}
	return niche
}

// brandabilityScore passes through the analyzer's brandability value.
func brandabilityScore(c *model.ContentSignals) (float64, model.Signal) {
	v := 0.0
	if c != nil {
		v = float64(c.BrandabilityScore)
	}

	severity := model.SeverityInfo
	if v < 50 {
		severity = model.SeverityWarning
	}

	return v, model.Signal{
		Type:        model.SignalBrandability,
		Severity:    severity,
		Description: fmt.Sprintf("Brandability %.0f/100", v),
		Data:        map[string]interface{}{"score": v, "formula": "content.brandability_score"},
	}
}

// spamPenalty is content spam + 0.5 * second spam term + a trust ratio
// penalty, clamped to [0,100]. The second term reads the content spam
// score unless the scorer is configured with SpamSourceSeparate.
func (s *Scorer) spamPenalty(signals model.DomainSignals) (float64, model.Signal) {
	contentSpam := 0
	if signals.Content != nil {
		contentSpam = signals.Content.SpamScore
	}

	secondary := contentSpam
	if s.spamSource == model.SpamSourceSeparate {
		secondary = 0
		if signals.SEO != nil {
			secondary = model.Value(signals.SEO.SpamScore)
		}
	}

	ratioPenalty := 0.0
	ratio, hasRatio := trustRatio(signals.SEO)
	if hasRatio {
		ratioPenalty = trustPenalty(ratio)
	}

	total := clamp(float64(contentSpam)+0.5*float64(secondary)+ratioPenalty, 0, 100)

	severity := model.SeverityInfo
	switch {
	case total > 60:
		severity = model.SeverityCritical
	case total > 30:
		severity = model.SeverityWarning
	}

	data := map[string]interface{}{
		"content_spam":   contentSpam,
		"secondary_spam": secondary,
		"spam_source":    string(s.spamSource),
		"ratio_penalty":  ratioPenalty,
		"score":          total,
		"formula":        "min(100, content_spam + 0.5*secondary_spam + tf_cf_penalty)",
	}
	if hasRatio {
		data["tf_cf_ratio"] = ratio
	}

	return total, model.Signal{
		Type:        model.SignalSpamPenalty,
		Severity:    severity,
		Description: fmt.Sprintf("Spam penalty %.1f/100", total),
		Data:        data,
	}
}

// trustRatioSignal explains the trust flow / citation flow term of the spam
// penalty. It is absent when either flow is missing or zero.
func trustRatioSignal(seo *model.SeoMetrics) (model.Signal, bool) {
	ratio, ok := trustRatio(seo)
	if !ok {
		return model.Signal{}, false
	}

	penalty := trustPenalty(ratio)
	severity := model.SeverityInfo
	switch penalty {
	case 20:
		severity = model.SeverityCritical
	case 10:
		severity = model.SeverityWarning
	}

	return model.Signal{
		Type:        model.SignalTrustRatio,
		Severity:    severity,
		Description: fmt.Sprintf("Trust/citation ratio %.2f", ratio),
		Data: map[string]interface{}{
			"trust_flow":    model.Value(seo.TrustFlow),
			"citation_flow": model.Value(seo.CitationFlow),
			"ratio":         ratio,
			"penalty":       penalty,
			"formula":       "tf/cf < 0.3: +20, < 0.5: +10",
		},
	}, true
}

func trustPenalty(ratio float64) float64 {
	switch {
	case ratio < 0.3:
		return 20
	case ratio < 0.5:
		return 10
	}
	return 0
}

// trustRatio returns trust flow / citation flow when both are non-zero.
func trustRatio(seo *model.SeoMetrics) (float64, bool) {
	if seo == nil {
		return 0, false
	}
	tf := model.Value(seo.TrustFlow)
	cf := model.Value(seo.CitationFlow)
	if tf == 0 || cf == 0 {
		return 0, false
	}
	return float64(tf) / float64(cf), true
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
