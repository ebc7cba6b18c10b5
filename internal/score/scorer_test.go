package score

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/ppiankov/domainhunter/internal/model"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func f64(v float64) *float64 { return &v }

// maxSEO returns metrics that saturate every part of the SEO sub-score.
func maxSEO() *model.SeoMetrics {
	return &model.SeoMetrics{
		DomainAuthority:  model.Int(100),
		Backlinks:        model.Int(9999),
		ReferringDomains: model.Int(2154),
		TrustFlow:        model.Int(100),
		OrganicTraffic:   model.Int(4641589),
	}
}

func TestSEOScore(t *testing.T) {
	tests := []struct {
		name string
		seo  *model.SeoMetrics
		want float64
	}{
		{"nil metrics", nil, 0},
		{"all absent", &model.SeoMetrics{}, 0},
		{"authority only", &model.SeoMetrics{DomainAuthority: model.Int(50)}, 15},
		{"trust only", &model.SeoMetrics{TrustFlow: model.Int(40)}, 6},
		{"zero backlinks", &model.SeoMetrics{Backlinks: model.Int(0)}, 0},
		{"negative backlinks", &model.SeoMetrics{Backlinks: model.Int(-5)}, 0},
		{"saturated", maxSEO(), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SEOScore(tt.seo); !approx(got, tt.want) {
				t.Errorf("SEOScore = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSEOScore_Backlinks(t *testing.T) {
	// log10(100)*25 = 50 -> 50/100*25 = 12.5
	got := SEOScore(&model.SeoMetrics{Backlinks: model.Int(99)})
	if math.Abs(got-12.5) > 1e-6 {
		t.Errorf("SEOScore(99 backlinks) = %f, want 12.5", got)
	}
}

func TestContentScore(t *testing.T) {
	tests := []struct {
		name    string
		content *model.ContentSignals
		want    float64
	}{
		{"nil", nil, 0},
		{
			"high value niche",
			&model.ContentSignals{ContentQuality: 80, Niche: model.NicheTechnology, Readability: 50, Sentiment: model.Sentiment{Compound: 0.5}},
			77,
		},
		{
			"other known niche",
			&model.ContentSignals{ContentQuality: 80, Niche: model.NicheFood, Readability: 50, Sentiment: model.Sentiment{Compound: 0.5}},
			67,
		},
		{
			"general niche counts as known",
			&model.ContentSignals{Niche: model.NicheGeneral},
			20,
		},
		{
			"unknown niche",
			&model.ContentSignals{ContentQuality: 80, Niche: model.NicheUnknown, Readability: 50, Sentiment: model.Sentiment{Compound: 0.5}},
			47,
		},
		{
			"empty niche",
			&model.ContentSignals{ContentQuality: 50},
			20,
		},
		{
			"negative sentiment ignored",
			&model.ContentSignals{ContentQuality: 80, Niche: model.NicheTechnology, Readability: 50, Sentiment: model.Sentiment{Compound: -0.5}},
			72,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := contentScore(tt.content)
			if !approx(got, tt.want) {
				t.Errorf("contentScore = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBrandabilityScore_PassThrough(t *testing.T) {
	got, _ := brandabilityScore(&model.ContentSignals{BrandabilityScore: 73})
	if got != 73 {
		t.Errorf("brandabilityScore = %f, want 73", got)
	}
	got, _ = brandabilityScore(nil)
	if got != 0 {
		t.Errorf("brandabilityScore(nil) = %f, want 0", got)
	}
}

// The default scorer reads the content spam score for both penalty terms.
// This pins that behavior so a change to it is deliberate.
func TestSpamPenalty_DuplicatedSourceByDefault(t *testing.T) {
	signals := model.DomainSignals{
		DomainName: "example.com",
		SEO:        &model.SeoMetrics{SpamScore: model.Int(10)},
		Content:    &model.ContentSignals{SpamScore: 20},
	}

	got, _ := NewScorer().spamPenalty(signals)
	if !approx(got, 30) {
		t.Errorf("spamPenalty (content source) = %f, want 30 (20 + 0.5*20)", got)
	}
}

func TestSpamPenalty_SeparateSource(t *testing.T) {
	signals := model.DomainSignals{
		DomainName: "example.com",
		SEO:        &model.SeoMetrics{SpamScore: model.Int(10)},
		Content:    &model.ContentSignals{SpamScore: 20},
	}

	s := NewScorerFromConfig(model.ScoringConfig{SpamSource: model.SpamSourceSeparate})
	got, _ := s.spamPenalty(signals)
	if !approx(got, 25) {
		t.Errorf("spamPenalty (separate source) = %f, want 25 (20 + 0.5*10)", got)
	}

	// No SEO spam score reported: second term is zero.
	signals.SEO = nil
	got, _ = s.spamPenalty(signals)
	if !approx(got, 20) {
		t.Errorf("spamPenalty (separate, no SEO) = %f, want 20", got)
	}
}

func TestSpamPenalty_TrustRatio(t *testing.T) {
	tests := []struct {
		name string
		tf   *int
		cf   *int
		want float64
	}{
		{"very low ratio", model.Int(10), model.Int(50), 20},
		{"low ratio", model.Int(20), model.Int(50), 10},
		{"healthy ratio", model.Int(30), model.Int(50), 0},
		{"zero trust skipped", model.Int(0), model.Int(50), 0},
		{"absent citation skipped", model.Int(10), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := model.DomainSignals{
				DomainName: "example.com",
				SEO:        &model.SeoMetrics{TrustFlow: tt.tf, CitationFlow: tt.cf},
			}
			got, _ := NewScorer().spamPenalty(signals)
			if !approx(got, tt.want) {
				t.Errorf("spamPenalty = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSpamPenalty_Clamped(t *testing.T) {
	signals := model.DomainSignals{
		DomainName: "example.com",
		SEO:        &model.SeoMetrics{TrustFlow: model.Int(5), CitationFlow: model.Int(80)},
		Content:    &model.ContentSignals{SpamScore: 90},
	}
	got, _ := NewScorer().spamPenalty(signals)
	if got != 100 {
		t.Errorf("spamPenalty = %f, want 100", got)
	}
}

func TestCalculate_Bounds(t *testing.T) {
	bundles := []model.DomainSignals{
		{DomainName: "example.com"},
		{DomainName: "example.com", SEO: &model.SeoMetrics{}},
		{DomainName: "example.com", SEO: maxSEO(), Content: &model.ContentSignals{
			ContentQuality: 100, Niche: model.NicheFinance, Readability: 100,
			BrandabilityScore: 100, Sentiment: model.Sentiment{Compound: 1},
		}},
		{DomainName: "spam.biz", SEO: &model.SeoMetrics{TrustFlow: model.Int(1), CitationFlow: model.Int(80)},
			Content: &model.ContentSignals{SpamScore: 100}},
		{DomainName: "weird.io", SEO: &model.SeoMetrics{DomainAuthority: model.Int(5000), TrustFlow: model.Int(-300)},
			Content: &model.ContentSignals{ContentQuality: 900, BrandabilityScore: -50}},
	}

	s := NewScorer()
	for _, b := range bundles {
		got := s.Calculate(b, nil)
		if got < 0 || got > 100 || math.IsNaN(got) {
			t.Errorf("Calculate(%s) = %f, out of [0,100]", b.DomainName, got)
		}
	}
}

func TestCalculate_EmptyDomain(t *testing.T) {
	got := NewScorer().Calculate(model.DomainSignals{SEO: maxSEO()}, nil)
	if got != 0 {
		t.Errorf("Calculate with empty domain = %f, want 0", got)
	}
}

func TestCalculate_Override(t *testing.T) {
	signals := model.DomainSignals{DomainName: "example.com", SEO: maxSEO()}
	s := NewScorer()

	if got := s.Calculate(signals, nil); !approx(got, 40) {
		t.Errorf("default weights score = %f, want 40", got)
	}

	override := model.Weights{SEO: 0.9, Content: 0.05, Brandability: 0.05}
	if got := s.Calculate(signals, &override); !approx(got, 90) {
		t.Errorf("override weights score = %f, want 90", got)
	}

	if s.Weights() != model.DefaultWeights() {
		t.Error("override must not change the scorer's weights")
	}
}

func TestUpdateWeights_Normalizes(t *testing.T) {
	s, ok := NewScorer().UpdateWeights(model.WeightUpdate{
		SEO: f64(2), Content: f64(2), Brandability: f64(0), SpamPenalty: f64(0.1),
	})
	if !ok {
		t.Fatal("UpdateWeights returned false for a complete update")
	}

	w := s.Weights()
	if !approx(w.SEO, 0.5) || !approx(w.Content, 0.5) || !approx(w.Brandability, 0) {
		t.Errorf("weights not normalized: %+v", w)
	}
	if !approx(w.SEO+w.Content+w.Brandability, 1) {
		t.Errorf("positive weights sum to %f, want 1", w.SEO+w.Content+w.Brandability)
	}

	// Full SEO strength, nothing else: 100 * 0.5.
	got := s.Calculate(model.DomainSignals{DomainName: "example.com", SEO: maxSEO()}, nil)
	if !approx(got, 50) {
		t.Errorf("score after update = %f, want 50", got)
	}
}

// The spam penalty weight is excluded from normalization.
func TestUpdateWeights_SpamPenaltyNotNormalized(t *testing.T) {
	s, ok := NewScorer().UpdateWeights(model.WeightUpdate{
		SEO: f64(1), Content: f64(1), Brandability: f64(2), SpamPenalty: f64(0.5),
	})
	if !ok {
		t.Fatal("UpdateWeights returned false")
	}

	want := model.Weights{SEO: 0.25, Content: 0.25, Brandability: 0.5, SpamPenalty: 0.5}
	if s.Weights() != want {
		t.Errorf("weights = %+v, want %+v", s.Weights(), want)
	}
}

func TestUpdateWeights_MissingKey(t *testing.T) {
	signals := model.DomainSignals{DomainName: "example.com", SEO: maxSEO()}
	s := NewScorer()
	before := s.Calculate(signals, nil)

	next, ok := s.UpdateWeights(model.WeightUpdate{SEO: f64(1), Content: f64(1), Brandability: f64(1)})
	if ok {
		t.Fatal("UpdateWeights accepted an update without spam_penalty")
	}
	if next != s {
		t.Error("rejected update should return the same scorer")
	}

	after := next.Calculate(signals, nil)
	if before != after {
		t.Errorf("score changed after rejected update: %f -> %f", before, after)
	}
}

func TestUpdateWeights_ZeroSum(t *testing.T) {
	s, ok := NewScorer().UpdateWeights(model.WeightUpdate{
		SEO: f64(0), Content: f64(0), Brandability: f64(0), SpamPenalty: f64(1),
	})
	if !ok {
		t.Fatal("UpdateWeights returned false")
	}
	if s.Weights() != (model.Weights{SpamPenalty: 1}) {
		t.Errorf("weights = %+v", s.Weights())
	}
}

func TestScorer_ConcurrentUpdateIsolation(t *testing.T) {
	base := NewScorer()
	signals := model.DomainSignals{DomainName: "example.com", SEO: maxSEO()}

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(2)
		go func(v float64) {
			defer wg.Done()
			_, _ = base.UpdateWeights(model.WeightUpdate{SEO: f64(v), Content: f64(1), Brandability: f64(1), SpamPenalty: f64(0)})
		}(float64(i))
		go func() {
			defer wg.Done()
			if got := base.Calculate(signals, nil); !approx(got, 40) {
				t.Errorf("shared scorer changed under concurrent updates: %f", got)
			}
		}()
	}
	wg.Wait()
}

func TestBreakdown_EmptySignals(t *testing.T) {
	b := NewScorer().Breakdown(model.DomainSignals{DomainName: "example.com"})

	want := []string{msgLowSEO, msgLowAuthority, msgLowContent, msgUnknownNiche, msgLowBrand, msgLow}
	if !reflect.DeepEqual(b.Recommendations, want) {
		t.Errorf("recommendations =\n%v\nwant\n%v", b.Recommendations, want)
	}
	if b.OverallScore != 0 {
		t.Errorf("overall = %f, want 0", b.OverallScore)
	}
	if len(b.Signals) != 4 {
		t.Errorf("expected 4 signals without trust/citation flow, got %d", len(b.Signals))
	}
}

func TestBreakdown_Excellent(t *testing.T) {
	signals := model.DomainSignals{
		DomainName: "techpro.io",
		SEO:        maxSEO(),
		Content: &model.ContentSignals{
			ContentQuality: 100, Niche: model.NicheTechnology, Readability: 100,
			BrandabilityScore: 100, Sentiment: model.Sentiment{Compound: 1},
		},
	}

	s := NewScorer()
	b := s.Breakdown(signals)

	if !approx(b.OverallScore, 90) {
		t.Errorf("overall = %f, want 90", b.OverallScore)
	}
	if !approx(b.OverallScore, s.Calculate(signals, nil)) {
		t.Error("breakdown and Calculate disagree")
	}
	if !reflect.DeepEqual(b.Recommendations, []string{msgExcellent}) {
		t.Errorf("recommendations = %v", b.Recommendations)
	}

	wc := b.WeightedContributions
	if !approx(wc.SEO, 40) || !approx(wc.Content, 30) || !approx(wc.Brandability, 20) || wc.SpamPenalty != 0 {
		t.Errorf("weighted contributions = %+v", wc)
	}
	if b.Weights != model.DefaultWeights() {
		t.Errorf("weights = %+v", b.Weights)
	}
}

func TestBreakdown_SpamAndTrust(t *testing.T) {
	signals := model.DomainSignals{
		DomainName: "cheap-deals.biz",
		SEO: &model.SeoMetrics{
			DomainAuthority: model.Int(40), TrustFlow: model.Int(10), CitationFlow: model.Int(50),
		},
		Content: &model.ContentSignals{
			Niche: model.NicheBusiness, ContentQuality: 60, Readability: 60,
			BrandabilityScore: 70, SpamScore: 20,
		},
	}

	b := NewScorer().Breakdown(signals)

	// spam penalty: 20 + 10 + 20 (ratio 0.2) = 50
	if !approx(b.ComponentScores.SpamPenalty, 50) {
		t.Fatalf("spam penalty = %f, want 50", b.ComponentScores.SpamPenalty)
	}

	has := func(msg string) bool {
		for _, r := range b.Recommendations {
			if r == msg {
				return true
			}
		}
		return false
	}
	if !has(msgHighSpam) || !has(msgLowTrust) {
		t.Errorf("expected spam and trust recommendations, got %v", b.Recommendations)
	}
	if has(msgLowAuthority) || has(msgUnknownNiche) {
		t.Errorf("unexpected recommendations: %v", b.Recommendations)
	}

	var trust *model.Signal
	for i := range b.Signals {
		if b.Signals[i].Type == model.SignalTrustRatio {
			trust = &b.Signals[i]
		}
	}
	if trust == nil {
		t.Fatal("expected a trust ratio signal")
	}
	if trust.Severity != model.SeverityCritical || trust.Data["penalty"] != 20.0 || !approx(trust.Data["ratio"].(float64), 0.2) {
		t.Errorf("trust signal = %+v", trust)
	}

	last := b.Recommendations[len(b.Recommendations)-1]
	if last != verdict(b.OverallScore) {
		t.Errorf("last recommendation %q is not the verdict", last)
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, msgExcellent},
		{80.01, msgExcellent},
		{80, msgGood},
		{60.5, msgGood},
		{60, msgModerate},
		{41, msgModerate},
		{40, msgLow},
		{0, msgLow},
	}
	for _, tt := range tests {
		if got := verdict(tt.score); got != tt.want {
			t.Errorf("verdict(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
