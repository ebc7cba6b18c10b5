package model

import "fmt"

// Weights controls how component scores combine into the overall score.
// Weights is a value type: updates produce a new value and never mutate
// one that is already shared.
type Weights struct {
	SEO          float64 `json:"seo" yaml:"seo" mapstructure:"seo"`
	Content      float64 `json:"content" yaml:"content" mapstructure:"content"`
	Brandability float64 `json:"brandability" yaml:"brandability" mapstructure:"brandability"`
	SpamPenalty  float64 `json:"spam_penalty" yaml:"spam_penalty" mapstructure:"spam_penalty"`
}

// DefaultWeights returns the stock weighting.
func DefaultWeights() Weights {
	return Weights{
		SEO:          0.4,
		Content:      0.3,
		Brandability: 0.2,
		SpamPenalty:  0.1,
	}
}

// WeightUpdate is a caller-supplied replacement weight set.
// Pointers distinguish a missing key from an explicit zero.
type WeightUpdate struct {
	SEO          *float64 `json:"seo"`
	Content      *float64 `json:"content"`
	Brandability *float64 `json:"brandability"`
	SpamPenalty  *float64 `json:"spam_penalty"`
}

// Missing returns the names of keys absent from the update.
func (u WeightUpdate) Missing() []string {
	var missing []string
	if u.SEO == nil {
		missing = append(missing, "seo")
	}
	if u.Content == nil {
		missing = append(missing, "content")
	}
	if u.Brandability == nil {
		missing = append(missing, "brandability")
	}
	if u.SpamPenalty == nil {
		missing = append(missing, "spam_penalty")
	}
	return missing
}

// Apply validates u and returns the resulting weights.
//
// All four keys are required; if any is missing, w is returned unchanged with ok=false.
// SEO, Content and Brandability are divided by their sum so they total 1.0
// (skipped when the sum is not positive). SpamPenalty is stored as given.
func (w Weights) Apply(u WeightUpdate) (Weights, bool) {
	if len(u.Missing()) > 0 {
		return w, false
	}

	next := Weights{
		SEO:          *u.SEO,
		Content:      *u.Content,
		Brandability: *u.Brandability,
		SpamPenalty:  *u.SpamPenalty,
	}

	sum := next.SEO + next.Content + next.Brandability
	if sum > 0 {
		next.SEO /= sum
		next.Content /= sum
		next.Brandability /= sum
	}

	return next, true
}

func (w Weights) String() string {
	return fmt.Sprintf("seo=%.3f content=%.3f brandability=%.3f spam_penalty=%.3f",
		w.SEO, w.Content, w.Brandability, w.SpamPenalty)
}
