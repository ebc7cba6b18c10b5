package model

import "testing"

func testReport(score float64, status DomainStatus, da, backlinks int, niche string, spam int) *Report {
	return &Report{
		Domain: "example.com",
		Status: status,
		Signals: DomainSignals{
			DomainName: "example.com",
			SEO:        &SeoMetrics{DomainAuthority: Int(da), Backlinks: Int(backlinks)},
			Content:    &ContentSignals{Niche: niche, SpamScore: spam, ContentQuality: 60},
		},
		Breakdown: ScoreBreakdown{OverallScore: score},
	}
}

func TestFilterCriteria_Matches(t *testing.T) {
	r := testReport(65, StatusAnalyzed, 30, 500, NicheTechnology, 10)

	tests := []struct {
		name   string
		filter FilterCriteria
		want   bool
	}{
		{"zero filter passes", FilterCriteria{}, true},
		{"min score", FilterCriteria{MinScore: 70}, false},
		{"max score", FilterCriteria{MaxScore: 60}, false},
		{"min authority", FilterCriteria{MinDomainAuthority: 31}, false},
		{"max backlinks", FilterCriteria{MaxBacklinks: 100}, false},
		{"niche match ignores case", FilterCriteria{Niches: []string{"technology"}}, true},
		{"niche mismatch", FilterCriteria{Niches: []string{NicheFinance, NicheHealth}}, false},
		{"max spam", FilterCriteria{MaxSpamScore: 5}, false},
		{"min content quality", FilterCriteria{MinContentQuality: 70}, false},
		{"all bounds satisfied", FilterCriteria{MinScore: 60, MaxScore: 70, MinDomainAuthority: 20, MinBacklinks: 100, MaxSpamScore: 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(r); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterCriteria_ExcludeSpam(t *testing.T) {
	spam := testReport(20, StatusSpam, 5, 10, NicheGeneral, 80)

	if (FilterCriteria{ExcludeSpam: true}).Matches(spam) {
		t.Error("spam report should be excluded")
	}
	if !(FilterCriteria{}).Matches(spam) {
		t.Error("spam report should pass when ExcludeSpam is false")
	}
}

func TestFilterCriteria_MissingSignals(t *testing.T) {
	r := &Report{Domain: "bare.com", Breakdown: ScoreBreakdown{OverallScore: 10}}

	if !(FilterCriteria{}).Matches(r) {
		t.Error("bare report should pass an empty filter")
	}
	if (FilterCriteria{Niches: []string{NicheTechnology}}).Matches(r) {
		t.Error("bare report has Unknown niche")
	}
	if (FilterCriteria{}).Matches(nil) {
		t.Error("nil report should not match")
	}
}
