package pipeline

import (
	"sort"
	"time"

	"github.com/ppiankov/domainhunter/internal/model"
)

// Summary score bands and leaderboard size.
const (
	highScoreBand   = 70.0
	mediumScoreBand = 40.0
	topDomainsLimit = 10
)

// Summarize aggregates reports into batch statistics. Nil reports are skipped.
func Summarize(runID string, reports []*model.Report, now time.Time) model.Summary {
	summary := model.Summary{
		RunID:             runID,
		GeneratedAt:       now.UTC(),
		NicheDistribution: map[string]int{},
		TopDomains:        []model.TopDomain{},
	}

	var scoreSum, authoritySum, backlinkSum float64
	ranked := make([]*model.Report, 0, len(reports))

	for _, r := range reports {
		if r == nil {
			continue
		}
		summary.TotalDomains++
		ranked = append(ranked, r)

		s := r.Breakdown.OverallScore
		switch {
		case s >= highScoreBand:
			summary.ScoreDistribution.High++
		case s >= mediumScoreBand:
			summary.ScoreDistribution.Medium++
		default:
			summary.ScoreDistribution.Low++
		}

		summary.NicheDistribution[reportNiche(r)]++

		scoreSum += s
		if seo := r.Signals.SEO; seo != nil {
			authoritySum += float64(model.Value(seo.DomainAuthority))
			backlinkSum += float64(model.Value(seo.Backlinks))
		}
		summary.TotalEstimateValue += r.Value.EstimatedValue
	}

	if summary.TotalDomains == 0 {
		return summary
	}

	n := float64(summary.TotalDomains)
	summary.AverageScore = scoreSum / n
	summary.AverageAuthority = authoritySum / n
	summary.AverageBacklinks = backlinkSum / n

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.OverallScore > ranked[j].Breakdown.OverallScore
	})
	if len(ranked) > topDomainsLimit {
		ranked = ranked[:topDomainsLimit]
	}
	for _, r := range ranked {
		summary.TopDomains = append(summary.TopDomains, model.TopDomain{
			Domain:         r.Domain,
			Score:          r.Breakdown.OverallScore,
			Niche:          reportNiche(r),
			EstimatedValue: r.Value.EstimatedValue,
		})
	}

	return summary
}

// Filter returns the reports matching criteria, preserving order.
func Filter(reports []*model.Report, criteria model.FilterCriteria) []*model.Report {
	matched := make([]*model.Report, 0, len(reports))
	for _, r := range reports {
		if criteria.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func reportNiche(r *model.Report) string {
	if r.Signals.Content == nil || r.Signals.Content.Niche == "" {
		return model.NicheUnknown
	}
	return r.Signals.Content.Niche
}
