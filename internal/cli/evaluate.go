package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/domainhunter/internal/pipeline"
)

var (
	outJSON        string
	outMD          string
	historicalFile string
	currentFile    string
	evalTimeout    time.Duration
	noCache        bool
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <domain>",
	Short: "Score and value a single domain",
	Long: `Evaluate scores a single domain:
- Look up SEO metrics from the configured provider
- Analyze archived and current page text (or synthesize signals when none exist)
- Score brandability of the name
- Combine everything into a 0-100 score with recommendations
- Estimate resale value

Example:
  domainhunter evaluate techpro.io
  domainhunter evaluate techpro.io --historical archive.html --md report.md
  domainhunter evaluate techpro.io --weights seo=0.6,content=0.2,brandability=0.2,spam_penalty=0.1`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	// Output flags
	evaluateCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (\"-\" for stdout)")
	evaluateCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Input flags
	evaluateCmd.Flags().StringVar(&historicalFile, "historical", "", "archived page text or HTML")
	evaluateCmd.Flags().StringVar(&currentFile, "current", "", "current page text or HTML")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 30*time.Second, "evaluation timeout")
	evaluateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable provider cache")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), evalTimeout)
	defer cancel()

	historical, err := readText(historicalFile)
	if err != nil {
		return err
	}
	current, err := readText(currentFile)
	if err != nil {
		return err
	}

	cfg := *appConfig
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache

	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating: %s\n", args[0])
		fmt.Fprintf(os.Stderr, "SEO provider: %s\n", cfg.SEO.Provider)
		fmt.Fprintf(os.Stderr, "Weights: %s\n", cfg.Scoring.Weights)
		fmt.Fprintln(os.Stderr)
	}

	evaluator, err := pipeline.NewEvaluatorFromConfig(&cfg)
	if err != nil {
		return err
	}

	report, err := evaluator.EvaluateRequest(ctx, pipeline.Request{
		Domain:     args[0],
		Historical: historical,
		Current:    current,
	})
	if err != nil {
		return fmt.Errorf("evaluate failed: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)

	if outJSON == "-" {
		return writeJSONTo(cmd.OutOrStdout(), report)
	}
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
	}

	renderer.RenderSummary(cmd.OutOrStdout(), report)
	return nil
}
