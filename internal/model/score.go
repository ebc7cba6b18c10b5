package model

// ComponentScores holds the four per-axis sub-scores.
type ComponentScores struct {
	SEO          float64 `json:"seo"`
	Content      float64 `json:"content"`
	Brandability float64 `json:"brandability"`
	SpamPenalty  float64 `json:"spam_penalty"`
}

// WeightedContributions holds each sub-score multiplied by its weight.
// SpamPenalty is reported as a positive number and subtracted in the total.
type WeightedContributions struct {
	SEO          float64 `json:"seo"`
	Content      float64 `json:"content"`
	Brandability float64 `json:"brandability"`
	SpamPenalty  float64 `json:"spam_penalty"`
}

// ScoreBreakdown explains how an overall score was reached.
type ScoreBreakdown struct {
	DomainName            string                `json:"domain_name"`
	OverallScore          float64               `json:"overall_score"`
	ComponentScores       ComponentScores       `json:"component_scores"`
	WeightedContributions WeightedContributions `json:"weighted_contributions"`
	Weights               Weights               `json:"weights"`
	Recommendations       []string              `json:"recommendations"`
	Signals               []Signal              `json:"signals,omitempty"`
}

// ValueComponents are the terms of the value formula.
type ValueComponents struct {
	BaseValue         float64 `json:"base_value"`
	SEOValue          float64 `json:"seo_value"`
	ContentValue      float64 `json:"content_value"`
	BrandabilityValue float64 `json:"brandability_value"`
	NicheMultiplier   float64 `json:"niche_multiplier"`
	SpamPenalty       float64 `json:"spam_penalty"`
}

// ValueEstimate is an estimated resale price and its bracket.
type ValueEstimate struct {
	DomainName      string          `json:"domain_name"`
	EstimatedValue  float64         `json:"estimated_value"`
	ValueRange      string          `json:"value_range"`
	ValueComponents ValueComponents `json:"value_components"`
}

// Value bracket labels, lowest first.
const (
	RangeUnder100 = "Under $100"
	Range100To500 = "$100 - $500"
	Range500To1K  = "$500 - $1,000"
	Range1KTo2500 = "$1,000 - $2,500"
	Range2500To5K = "$2,500 - $5,000"
	RangeOver5K   = "$5,000+"
)

// Signal records one scored axis with the inputs and formula behind it.
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies a scoring signal.
type SignalType string

const (
	SignalSEO          SignalType = "seo"
	SignalContent      SignalType = "content"
	SignalBrandability SignalType = "brandability"
	SignalSpamPenalty  SignalType = "spam_penalty"
	SignalTrustRatio   SignalType = "trust_ratio"
)

// SignalSeverity indicates how much attention a signal deserves.
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)
