package score

import (
	"fmt"
	"math"

	"github.com/ppiankov/domainhunter/internal/model"
)

// SEO sub-score budget per metric. The five parts sum to 100.
const (
	authorityPoints = 30.0
	backlinkPoints  = 25.0
	referringPoints = 20.0
	trustPoints     = 15.0
	trafficPoints   = 10.0
)

// SEOScore normalizes raw SEO metrics into a 0-100 sub-score.
// Missing metrics contribute nothing. Counts are scored on a log10 scale.
// The result is not clamped here; out-of-range authority or trust values
// pass through and are bounded by the aggregate.
func SEOScore(seo *model.SeoMetrics) float64 {
	points, _ := seoScore(seo)
	return points
}

func seoScore(seo *model.SeoMetrics) (float64, model.Signal) {
	if seo == nil {
		return 0, model.Signal{
			Type:        model.SignalSEO,
			Severity:    model.SeverityWarning,
			Description: "No SEO metrics available",
			Data: map[string]interface{}{
				"score":   0.0,
				"formula": "no metrics",
			},
		}
	}

	da := model.Value(seo.DomainAuthority)
	backlinks := model.Value(seo.Backlinks)
	referring := model.Value(seo.ReferringDomains)
	trust := model.Value(seo.TrustFlow)
	traffic := model.Value(seo.OrganicTraffic)

	authority := float64(da) / 100 * authorityPoints
	links := logPoints(backlinks, 25) / 100 * backlinkPoints
	refs := logPoints(referring, 30) / 100 * referringPoints
	tf := float64(trust) / 100 * trustPoints
	visits := logPoints(traffic, 15) / 100 * trafficPoints

	total := authority + links + refs + tf + visits

	severity := model.SeverityInfo
	if total < 30 {
		severity = model.SeverityWarning
	}

	return total, model.Signal{
		Type:        model.SignalSEO,
		Severity:    severity,
		Description: fmt.Sprintf("SEO strength %.1f/100", total),
		Data: map[string]interface{}{
			"domain_authority":  da,
			"backlinks":         backlinks,
			"referring_domains": referring,
			"trust_flow":        trust,
			"organic_traffic":   traffic,
			"authority_points":  authority,
			"backlink_points":   links,
			"referring_points":  refs,
			"trust_points":      tf,
			"traffic_points":    visits,
			"score":             total,
			"formula":           "da/100*30 + min(100,log10(bl+1)*25)/100*25 + min(100,log10(rd+1)*30)/100*20 + tf/100*15 + min(100,log10(traffic+1)*15)/100*10",
		},
	}
}

// logPoints maps a non-negative count onto 0-100 as min(100, log10(n+1)*scale).
// Non-positive counts score 0.
func logPoints(n int, scale float64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(100, math.Log10(float64(n)+1)*scale)
}
