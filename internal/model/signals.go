package model

// DomainSignals is the input bundle for scoring a single domain.
// Only DomainName is required; absent SEO or content data contributes zero.
type DomainSignals struct {
	DomainName string          `json:"domain_name"`
	SEO        *SeoMetrics     `json:"seo,omitempty"`
	Content    *ContentSignals `json:"content,omitempty"`
}

// SeoMetrics holds third-party link and authority metrics.
// Each field is independently optional: nil means the provider did not report it.
type SeoMetrics struct {
	DomainAuthority  *int `json:"domain_authority,omitempty" yaml:"domain_authority,omitempty"`
	PageAuthority    *int `json:"page_authority,omitempty" yaml:"page_authority,omitempty"`
	Backlinks        *int `json:"backlinks,omitempty" yaml:"backlinks,omitempty"`
	ReferringDomains *int `json:"referring_domains,omitempty" yaml:"referring_domains,omitempty"`
	OrganicTraffic   *int `json:"organic_traffic,omitempty" yaml:"organic_traffic,omitempty"`
	TrustFlow        *int `json:"trust_flow,omitempty" yaml:"trust_flow,omitempty"`
	CitationFlow     *int `json:"citation_flow,omitempty" yaml:"citation_flow,omitempty"`
	SpamScore        *int `json:"spam_score,omitempty" yaml:"spam_score,omitempty"`
}

// Int returns a pointer to v. Used to build SeoMetrics literals.
func Int(v int) *int {
	return &v
}

// Value dereferences an optional metric, treating nil as zero.
func Value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Sentiment holds lexicon-based polarity scores.
// Positive, Negative and Neutral are proportions in [0,1]; Compound is in [-1,1].
type Sentiment struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Compound float64 `json:"compound"`
}

// NeutralSentiment is returned for empty text.
func NeutralSentiment() Sentiment {
	return Sentiment{Neutral: 1}
}

// ContentSignals is the output of content analysis for one domain.
type ContentSignals struct {
	Niche             string    `json:"niche"`
	ContentQuality    int       `json:"content_quality"`
	SpamScore         int       `json:"spam_score"`
	BrandabilityScore int       `json:"brandability_score"`
	Readability       int       `json:"readability"`
	Sentiment         Sentiment `json:"sentiment"`
	Keywords          []string  `json:"keywords"`
	HistoricalText    string    `json:"historical_text,omitempty"`
	Language          string    `json:"language"`

	// Fallback is set when the bundle came from the deterministic generator
	// rather than from analyzing real text.
	Fallback bool `json:"fallback,omitempty"`
}

// Niche names produced by the content classifier.
const (
	NicheTechnology    = "Technology"
	NicheHealth        = "Health"
	NicheFinance       = "Finance"
	NicheTravel        = "Travel"
	NicheEducation     = "Education"
	NicheEntertainment = "Entertainment"
	NicheBusiness      = "Business"
	NicheFood          = "Food"
	NicheFashion       = "Fashion"
	NicheGeneral       = "General"
	NicheUnknown       = "Unknown"
)

// Niches lists the classifiable niches in declaration order.
// Order matters: classification ties resolve to the earliest entry.
var Niches = []string{
	NicheTechnology,
	NicheHealth,
	NicheFinance,
	NicheTravel,
	NicheEducation,
	NicheEntertainment,
	NicheBusiness,
	NicheFood,
	NicheFashion,
}
