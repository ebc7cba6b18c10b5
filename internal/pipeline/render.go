package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ppiankov/domainhunter/internal/model"
)

// Renderer writes reports as JSON, Markdown and short console summaries.
type Renderer struct {
	includeSignals bool
}

// NewRenderer creates a renderer. includeSignals adds the per-component
// signal table to Markdown output.
func NewRenderer(includeSignals bool) *Renderer {
	return &Renderer{includeSignals: includeSignals}
}

// ScoreLabel names a score band.
func ScoreLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

// Money formats a dollar amount with thousands separators, e.g. "$2,310".
func Money(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// Count formats an optional metric, e.g. "12,345" or "n/a".
func Count(p *int) string {
	if p == nil {
		return "n/a"
	}
	return humanize.Comma(int64(*p))
}

// RenderJSON writes v as indented JSON to path, creating parent directories.
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

// RenderMarkdown writes a Markdown report for one domain to path.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder
	r.WriteMarkdown(&b, report)
	return writeFile(path, []byte(b.String()))
}

// WriteMarkdown writes a Markdown report for one domain to w.
func (r *Renderer) WriteMarkdown(w io.Writer, report *model.Report) {
	bd := report.Breakdown

	fmt.Fprintf(w, "# %s\n\n", report.Domain)
	fmt.Fprintf(w, "- **Score:** %.1f/100 (%s)\n", bd.OverallScore, ScoreLabel(bd.OverallScore))
	fmt.Fprintf(w, "- **Status:** %s\n", report.Status)
	fmt.Fprintf(w, "- **Estimated value:** %s (%s)\n", Money(report.Value.EstimatedValue), report.Value.ValueRange)
	fmt.Fprintf(w, "- **Evaluated:** %s\n", report.EvaluatedAt.Format("2006-01-02 15:04:05 MST"))
	if report.RunID != "" {
		fmt.Fprintf(w, "- **Run:** `%s`\n", report.RunID)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "## Score breakdown\n\n")
	fmt.Fprintf(w, "| Component | Score | Weight | Contribution |\n")
	fmt.Fprintf(w, "|---|---:|---:|---:|\n")
	fmt.Fprintf(w, "| SEO | %.1f | %.2f | %.1f |\n", bd.ComponentScores.SEO, bd.Weights.SEO, bd.WeightedContributions.SEO)
	fmt.Fprintf(w, "| Content | %.1f | %.2f | %.1f |\n", bd.ComponentScores.Content, bd.Weights.Content, bd.WeightedContributions.Content)
	fmt.Fprintf(w, "| Brandability | %.1f | %.2f | %.1f |\n", bd.ComponentScores.Brandability, bd.Weights.Brandability, bd.WeightedContributions.Brandability)
	fmt.Fprintf(w, "| Spam penalty | -%.1f | %.2f | -%.1f |\n", bd.ComponentScores.SpamPenalty, bd.Weights.SpamPenalty, bd.WeightedContributions.SpamPenalty)
	fmt.Fprintln(w)

	if seo := report.Signals.SEO; seo != nil {
		fmt.Fprintf(w, "## SEO metrics\n\n")
		fmt.Fprintf(w, "| Metric | Value |\n|---|---:|\n")
		fmt.Fprintf(w, "| Domain authority | %s |\n", Count(seo.DomainAuthority))
		fmt.Fprintf(w, "| Page authority | %s |\n", Count(seo.PageAuthority))
		fmt.Fprintf(w, "| Backlinks | %s |\n", Count(seo.Backlinks))
		fmt.Fprintf(w, "| Referring domains | %s |\n", Count(seo.ReferringDomains))
		fmt.Fprintf(w, "| Trust flow | %s |\n", Count(seo.TrustFlow))
		fmt.Fprintf(w, "| Citation flow | %s |\n", Count(seo.CitationFlow))
		fmt.Fprintf(w, "| Organic traffic | %s |\n", Count(seo.OrganicTraffic))
		fmt.Fprintf(w, "| Spam score | %s |\n", Count(seo.SpamScore))
		fmt.Fprintln(w)
	}

	if c := report.Signals.Content; c != nil {
		fmt.Fprintf(w, "## Content\n\n")
		fmt.Fprintf(w, "- Niche: %s\n", c.Niche)
		fmt.Fprintf(w, "- Quality: %d, readability: %d, spam: %d, brandability: %d\n",
			c.ContentQuality, c.Readability, c.SpamScore, c.BrandabilityScore)
		fmt.Fprintf(w, "- Language: %s\n", c.Language)
		fmt.Fprintf(w, "- Sentiment: %+.2f\n", c.Sentiment.Compound)
		if len(c.Keywords) > 0 {
			fmt.Fprintf(w, "- Keywords: %s\n", strings.Join(c.Keywords, ", "))
		}
		if c.Fallback {
			fmt.Fprintf(w, "- _No page text was available; content signals are synthesized._\n")
		}
		fmt.Fprintln(w)
	}

	if len(bd.Recommendations) > 0 {
		fmt.Fprintf(w, "## Recommendations\n\n")
		for _, rec := range bd.Recommendations {
			fmt.Fprintf(w, "- %s\n", rec)
		}
		fmt.Fprintln(w)
	}

	if r.includeSignals && len(bd.Signals) > 0 {
		fmt.Fprintf(w, "## Signals\n\n")
		fmt.Fprintf(w, "| Type | Severity | Description |\n|---|---|---|\n")
		for _, s := range bd.Signals {
			fmt.Fprintf(w, "| %s | %s | %s |\n", s.Type, s.Severity, s.Description)
		}
		fmt.Fprintln(w)
	}
}

// RenderSummary prints a short console summary of one report.
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	bd := report.Breakdown
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  %s\n", report.Domain)
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Score:        %.1f/100 (%s)\n", bd.OverallScore, ScoreLabel(bd.OverallScore))
	fmt.Fprintf(w, "  Status:       %s\n", report.Status)
	fmt.Fprintf(w, "  Value:        %s (%s)\n", Money(report.Value.EstimatedValue), report.Value.ValueRange)
	fmt.Fprintf(w, "  SEO:          %.1f\n", bd.ComponentScores.SEO)
	fmt.Fprintf(w, "  Content:      %.1f\n", bd.ComponentScores.Content)
	fmt.Fprintf(w, "  Brandability: %.1f\n", bd.ComponentScores.Brandability)
	fmt.Fprintf(w, "  Spam penalty: %.1f\n", bd.ComponentScores.SpamPenalty)
	if c := report.Signals.Content; c != nil {
		fmt.Fprintf(w, "  Niche:        %s\n", c.Niche)
	}
	if len(bd.Recommendations) > 0 {
		fmt.Fprintf(w, "\n")
		for _, rec := range bd.Recommendations {
			fmt.Fprintf(w, "  • %s\n", rec)
		}
	}
	fmt.Fprintf(w, "\n")
}

// RenderSummaryMarkdown writes a Markdown batch summary to path.
func (r *Renderer) RenderSummaryMarkdown(summary model.Summary, path string) error {
	var b strings.Builder
	r.WriteSummaryMarkdown(&b, summary)
	return writeFile(path, []byte(b.String()))
}

// WriteSummaryMarkdown writes a Markdown batch summary to w.
func (r *Renderer) WriteSummaryMarkdown(w io.Writer, s model.Summary) {
	fmt.Fprintf(w, "# Batch summary\n\n")
	fmt.Fprintf(w, "- **Run:** `%s`\n", s.RunID)
	fmt.Fprintf(w, "- **Generated:** %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "- **Domains:** %s\n", humanize.Comma(int64(s.TotalDomains)))
	fmt.Fprintf(w, "- **Average score:** %.1f\n", s.AverageScore)
	fmt.Fprintf(w, "- **Average domain authority:** %.1f\n", s.AverageAuthority)
	fmt.Fprintf(w, "- **Average backlinks:** %s\n", humanize.Commaf(math.Round(s.AverageBacklinks)))
	fmt.Fprintf(w, "- **Total estimated value:** %s\n\n", Money(s.TotalEstimateValue))

	fmt.Fprintf(w, "## Score distribution\n\n")
	fmt.Fprintf(w, "| Band | Domains |\n|---|---:|\n")
	fmt.Fprintf(w, "| High (70+) | %d |\n", s.ScoreDistribution.High)
	fmt.Fprintf(w, "| Medium (40-70) | %d |\n", s.ScoreDistribution.Medium)
	fmt.Fprintf(w, "| Low (<40) | %d |\n\n", s.ScoreDistribution.Low)

	if len(s.NicheDistribution) > 0 {
		fmt.Fprintf(w, "## Niches\n\n")
		fmt.Fprintf(w, "| Niche | Domains |\n|---|---:|\n")
		for _, niche := range append(append([]string{}, model.Niches...), model.NicheGeneral, model.NicheUnknown) {
			if n := s.NicheDistribution[niche]; n > 0 {
				fmt.Fprintf(w, "| %s | %d |\n", niche, n)
			}
		}
		fmt.Fprintln(w)
	}

	if len(s.TopDomains) > 0 {
		fmt.Fprintf(w, "## Top domains\n\n")
		fmt.Fprintf(w, "| Rank | Domain | Score | Niche | Value |\n|---|---|---:|---|---:|\n")
		for i, d := range s.TopDomains {
			fmt.Fprintf(w, "| %s | %s | %.1f | %s | %s |\n",
				humanize.Ordinal(i+1), d.Domain, d.Score, d.Niche, Money(d.EstimatedValue))
		}
		fmt.Fprintln(w)
	}
}

// ReportSlug returns a file-name-safe stem for a domain.
func ReportSlug(domain string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s := strings.Trim(replacer.Replace(domain), " .")
	if s == "" {
		s = "report"
	}
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
