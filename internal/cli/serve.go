package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/domainhunter/internal/pipeline"
	"github.com/ppiankov/domainhunter/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluation API over HTTP",
	Long: `Serve exposes evaluation, scoring, valuation, content analysis and
weight management as a JSON API. Weights updated with PUT /v1/weights apply
to every later request until the server stops.

Example:
  domainhunter serve --addr :8080
  curl -s localhost:8080/v1/evaluate -d '{"domain":"techpro.io"}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *appConfig
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		evaluator, err := pipeline.NewEvaluatorFromConfig(&cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "domainhunter API on %s (weights %s)\n", cfg.Server.Addr, evaluator.Scorer().Weights())
		return server.New(evaluator, cfg.Server).ListenAndServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: server.addr)")
}
