package model

import "strings"

// FilterCriteria selects reports from a batch.
// Zero values of the Max* fields mean "no upper bound".
type FilterCriteria struct {
	MinScore            float64  `json:"min_score" yaml:"min_score"`
	MaxScore            float64  `json:"max_score" yaml:"max_score"`
	MinDomainAuthority  int      `json:"min_domain_authority" yaml:"min_domain_authority"`
	MaxDomainAuthority  int      `json:"max_domain_authority" yaml:"max_domain_authority"`
	MinBacklinks        int      `json:"min_backlinks" yaml:"min_backlinks"`
	MaxBacklinks        int      `json:"max_backlinks" yaml:"max_backlinks"`
	MinReferringDomains int      `json:"min_referring_domains" yaml:"min_referring_domains"`
	MaxReferringDomains int      `json:"max_referring_domains" yaml:"max_referring_domains"`
	Niches              []string `json:"niches" yaml:"niches"`
	ExcludeSpam         bool     `json:"exclude_spam" yaml:"exclude_spam"`
	MinContentQuality   int      `json:"min_content_quality" yaml:"min_content_quality"`
	MaxSpamScore        int      `json:"max_spam_score" yaml:"max_spam_score"`
}

// Matches reports whether r passes every configured bound.
func (f FilterCriteria) Matches(r *Report) bool {
	if r == nil {
		return false
	}

	score := r.Breakdown.OverallScore
	if score < f.MinScore || (f.MaxScore > 0 && score > f.MaxScore) {
		return false
	}

	if f.ExcludeSpam && r.Status == StatusSpam {
		return false
	}

	var da, backlinks, referring int
	if seo := r.Signals.SEO; seo != nil {
		da = Value(seo.DomainAuthority)
		backlinks = Value(seo.Backlinks)
		referring = Value(seo.ReferringDomains)
	}
	if !inRange(da, f.MinDomainAuthority, f.MaxDomainAuthority) ||
		!inRange(backlinks, f.MinBacklinks, f.MaxBacklinks) ||
		!inRange(referring, f.MinReferringDomains, f.MaxReferringDomains) {
		return false
	}

	niche := NicheUnknown
	quality, spam := 0, 0
	if c := r.Signals.Content; c != nil {
		niche = c.Niche
		quality = c.ContentQuality
		spam = c.SpamScore
	}

	if quality < f.MinContentQuality {
		return false
	}
	if f.MaxSpamScore > 0 && spam > f.MaxSpamScore {
		return false
	}

	if len(f.Niches) > 0 {
		found := false
		for _, n := range f.Niches {
			if strings.EqualFold(n, niche) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func inRange(v, lo, hi int) bool {
	if v < lo {
		return false
	}
	return hi <= 0 || v <= hi
}
