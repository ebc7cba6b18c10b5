package model

import "time"

// Report is the complete evaluation of one domain.
type Report struct {
	Domain      string         `json:"domain"`
	RunID       string         `json:"run_id"`
	EvaluatedAt time.Time      `json:"evaluated_at"`
	Status      DomainStatus   `json:"status"`
	Signals     DomainSignals  `json:"signals"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	Value       ValueEstimate  `json:"value"`
}

// DomainStatus classifies an evaluated domain.
type DomainStatus string

const (
	StatusDiscovered DomainStatus = "discovered"
	StatusAnalyzing  DomainStatus = "analyzing"
	StatusAnalyzed   DomainStatus = "analyzed"
	StatusHighValue  DomainStatus = "high_value"
	StatusSpam       DomainStatus = "spam"
	StatusError      DomainStatus = "error"
)

// Summary aggregates a batch of reports.
type Summary struct {
	RunID              string         `json:"run_id"`
	GeneratedAt        time.Time      `json:"generated_at"`
	TotalDomains       int            `json:"total_domains"`
	ScoreDistribution  ScoreBuckets   `json:"score_distribution"`
	NicheDistribution  map[string]int `json:"niche_distribution"`
	AverageScore       float64        `json:"average_score"`
	AverageAuthority   float64        `json:"average_domain_authority"`
	AverageBacklinks   float64        `json:"average_backlinks"`
	TotalEstimateValue float64        `json:"total_estimated_value"`
	TopDomains         []TopDomain    `json:"top_domains"`
}

// ScoreBuckets counts reports by score band.
type ScoreBuckets struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// TopDomain is one row of the summary leaderboard.
type TopDomain struct {
	Domain         string  `json:"domain"`
	Score          float64 `json:"score"`
	Niche          string  `json:"niche"`
	EstimatedValue float64 `json:"estimated_value"`
}
