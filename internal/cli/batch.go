package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/domainhunter/internal/model"
	"github.com/ppiankov/domainhunter/internal/pipeline"
	"github.com/ppiankov/domainhunter/internal/worker"
)

var (
	concurrency  int
	batchRate    float64
	outputDir    string
	batchTimeout time.Duration
	minScore     float64
	niches       []string
	excludeSpam  bool
	outFormat    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate multiple domains from a file in parallel",
	Long: `Batch evaluates many domains concurrently:
- Read domains from input file (one per line, # comments allowed)
- Evaluate domains in parallel with configurable worker count
- Write a report per domain that passes the filters
- Write a batch summary (score and niche distribution, top domains)

Example:
  domainhunter batch domains.txt
  domainhunter batch domains.txt --concurrency 10 --output-dir ./reports
  domainhunter batch domains.txt --min-score 60 --niche Technology --niche Finance`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().Float64Var(&batchRate, "rate", 0, "max domain lookups per second (default: concurrency.requests_per_second, 0 = unlimited)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory for reports (default: output.dir)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&outFormat, "format", "", "report format: json, md or both (default: output.format)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable provider cache")

	// Filter flags
	batchCmd.Flags().Float64Var(&minScore, "min-score", 0, "only write reports scoring at least this much")
	batchCmd.Flags().StringSliceVar(&niches, "niche", nil, "only write reports in these niches (repeatable)")
	batchCmd.Flags().BoolVar(&excludeSpam, "exclude-spam", false, "skip domains classified as spam")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	cfg := *appConfig
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	if batchRate > 0 {
		cfg.Concurrency.RequestsPerSecond = batchRate
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if outFormat != "" {
		cfg.Output.Format = outFormat
	}
	writeJSON, writeMD, err := formats(cfg.Output.Format)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  domainhunter batch evaluation\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	if cfg.Concurrency.RequestsPerSecond > 0 {
		fmt.Fprintf(os.Stderr, "  Rate limit:   %.1f/s\n", cfg.Concurrency.RequestsPerSecond)
	}
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "  SEO provider: %s\n", cfg.SEO.Provider)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	domains, invalid, err := worker.ReadDomainsFromFile(file)
	if err != nil {
		return fmt.Errorf("read domains: %w", err)
	}
	for _, line := range invalid {
		fmt.Fprintf(os.Stderr, "⚠ skipping invalid domain: %q\n", line)
	}
	fmt.Fprintf(os.Stderr, "✓ Loaded %d domains\n\n", len(domains))

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	evaluator, err := pipeline.NewEvaluatorFromConfig(&cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(evaluator, cfg.Concurrency.Workers)
	processor.Throttle(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst)
	processor.OnProgress(func(done, total int, r *worker.EvaluateResult) {
		if r.Error != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] ✗ %s: %v\n", done, total, r.Domain, r.Error)
			return
		}
		fmt.Fprintf(os.Stderr, "[%d/%d] ✓ %s (score: %.1f, %s)\n",
			done, total, r.Domain, r.Report.Breakdown.OverallScore, r.Report.Status)
	})

	results := processor.ProcessDomains(ctx, domains)

	criteria := model.FilterCriteria{MinScore: minScore, Niches: niches, ExcludeSpam: excludeSpam}
	renderer := pipeline.NewRenderer(cfg.Output.Verbose)

	var reports []*model.Report
	failures, written := 0, 0
	for _, result := range results {
		if result.Error != nil {
			failures++
			continue
		}
		reports = append(reports, result.Report)
	}

	kept := pipeline.Filter(reports, criteria)
	for _, report := range kept {
		slug := pipeline.ReportSlug(report.Domain)
		if writeJSON {
			if err := renderer.RenderJSON(report, filepath.Join(cfg.Output.Dir, slug+".json")); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", report.Domain, err)
				continue
			}
		}
		if writeMD {
			if err := renderer.RenderMarkdown(report, filepath.Join(cfg.Output.Dir, slug+".md")); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", report.Domain, err)
				continue
			}
		}
		written++
	}

	summary := pipeline.Summarize(evaluator.RunID(), kept, time.Now())
	if err := renderer.RenderJSON(summary, filepath.Join(cfg.Output.Dir, "summary.json")); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := renderer.RenderSummaryMarkdown(summary, filepath.Join(cfg.Output.Dir, "summary.md")); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Run:        %s\n", evaluator.RunID())
	fmt.Fprintf(os.Stderr, "  Total:      %d domains\n", len(results))
	fmt.Fprintf(os.Stderr, "  Evaluated:  %d\n", len(reports))
	fmt.Fprintf(os.Stderr, "  Failures:   %d\n", failures)
	fmt.Fprintf(os.Stderr, "  Reported:   %d (after filters)\n", written)
	fmt.Fprintf(os.Stderr, "  Avg score:  %.1f\n", summary.AverageScore)
	fmt.Fprintf(os.Stderr, "  Total value: %s\n", pipeline.Money(summary.TotalEstimateValue))
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "\n")

	return ctx.Err()
}

// formats maps output.format to which report files to write.
func formats(format string) (json, md bool, err error) {
	switch format {
	case "", "both":
		return true, true, nil
	case "json":
		return true, false, nil
	case "md", "markdown":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown output format %q (want json, md or both)", format)
	}
}
