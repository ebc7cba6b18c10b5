package score

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ppiankov/domainhunter/internal/model"
)

const baseValue = 100.0

var nicheMultipliers = map[string]float64{
	model.NicheTechnology:    1.5,
	model.NicheFinance:       2.0,
	model.NicheHealth:        1.8,
	model.NicheBusiness:      1.3,
	model.NicheEducation:     1.2,
	model.NicheTravel:        1.1,
	model.NicheEntertainment: 1.0,
}

// EstimateValue returns the estimated resale value of a domain:
//
//	(100 + seo + content + brandability) * niche_multiplier - spam
//	seo          = da*10 + log10(backlinks+1)*50 + log10(referring+1)*30
//	content      = quality*2
//	brandability = brandability*3
//	spam         = content_spam*5
//
// Negative counts are read as 0. The bracket is chosen from the raw value;
// the reported value is floored at 0.
func EstimateValue(signals model.DomainSignals) (estimate model.ValueEstimate) {
	estimate = model.ValueEstimate{
		DomainName: signals.DomainName,
		ValueRange: model.RangeUnder100,
	}
	if strings.TrimSpace(signals.DomainName) == "" {
		return estimate
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("domain", signals.DomainName).Interface("panic", r).Msg("value estimate failed")
			estimate.EstimatedValue = 0
			estimate.ValueRange = model.RangeUnder100
		}
	}()

	var da, backlinks, referring int
	if seo := signals.SEO; seo != nil {
		da = nonNegative(model.Value(seo.DomainAuthority))
		backlinks = nonNegative(model.Value(seo.Backlinks))
		referring = nonNegative(model.Value(seo.ReferringDomains))
	}

	var quality, brandability, spam int
	niche := model.NicheUnknown
	if c := signals.Content; c != nil {
		quality = nonNegative(c.ContentQuality)
		brandability = nonNegative(c.BrandabilityScore)
		spam = nonNegative(c.SpamScore)
		niche = c.Niche
	}

	components := model.ValueComponents{
		BaseValue:         baseValue,
		SEOValue:          float64(da)*10 + math.Log10(float64(backlinks)+1)*50 + math.Log10(float64(referring)+1)*30,
		ContentValue:      float64(quality) * 2,
		BrandabilityValue: float64(brandability) * 3,
		NicheMultiplier:   NicheMultiplier(niche),
		SpamPenalty:       float64(spam) * 5,
	}

	raw := (components.BaseValue+components.SEOValue+components.ContentValue+components.BrandabilityValue)*
		components.NicheMultiplier - components.SpamPenalty
	if math.IsNaN(raw) {
		raw = 0
	}

	estimate.EstimatedValue = math.Max(0, raw)
	estimate.ValueRange = ValueRange(raw)
	estimate.ValueComponents = components

	log.Debug().
		Str("domain", signals.DomainName).
		Float64("value", estimate.EstimatedValue).
		Str("range", estimate.ValueRange).
		Msg("value estimated")

	return estimate
}

// EstimateValue is the method form of the package-level EstimateValue.
// Valuation does not depend on the scorer's weights.
func (s *Scorer) EstimateValue(signals model.DomainSignals) model.ValueEstimate {
	return EstimateValue(signals)
}

// NicheMultiplier returns the value multiplier for niche; unlisted niches get 1.0.
func NicheMultiplier(niche string) float64 {
	if m, ok := nicheMultipliers[niche]; ok {
		return m
	}
	return 1.0
}

// ValueRange buckets a value. Each bound belongs to the higher bracket,
// so exactly 100 is "$100 - $500".
func ValueRange(v float64) string {
	switch {
	case v < 100:
		return model.RangeUnder100
	case v < 500:
		return model.Range100To500
	case v < 1000:
		return model.Range500To1K
	case v < 2500:
		return model.Range1KTo2500
	case v < 5000:
		return model.Range2500To5K
	default:
		return model.RangeOver5K
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
