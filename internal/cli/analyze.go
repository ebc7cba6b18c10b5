package cli

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/domainhunter/internal/content"
	"github.com/ppiankov/domainhunter/internal/util"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <domain>",
	Short: "Run content analysis only",
	Long: `Analyze prints the content signals (niche, quality, spam, sentiment,
readability, keywords, language) derived from page text. Without any text
it prints the deterministic synthesized signals used for that domain.

Example:
  domainhunter analyze techpro.io --historical archive.html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, err := util.NormalizeDomain(args[0])
		if err != nil {
			return err
		}
		historical, err := readText(historicalFile)
		if err != nil {
			return err
		}
		current, err := readText(currentFile)
		if err != nil {
			return err
		}

		analyzer := content.NewAnalyzer(appConfig.Content.MaxHistoricalChars)
		return writeJSONTo(cmd.OutOrStdout(), analyzer.Analyze(domain, historical, current))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&historicalFile, "historical", "", "archived page text or HTML")
	analyzeCmd.Flags().StringVar(&currentFile, "current", "", "current page text or HTML")
}
