package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/domainhunter/internal/logging"
	"github.com/ppiankov/domainhunter/internal/model"
)

// Version is the release version, overridable at build time with -ldflags.
var Version = "0.1.0"

var (
	cfgFile    string
	verbose    bool
	weightsArg string
	appConfig  = model.DefaultConfig()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "domainhunter",
	Short: "domainhunter - expired domain scoring and valuation",
	Long: `domainhunter evaluates expired or expiring domain names for re-registration.

For each domain it combines SEO metrics, analysis of the site's archived
and current page text, and a brandability heuristic for the name itself
into a 0-100 score with an explanation and a resale value estimate.

Scores are heuristics. They rank candidates; they do not price them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := logging.Setup(cfg.Log, verbose); err != nil {
			return err
		}
		if weightsArg != "" {
			u, err := parseWeights(weightsArg)
			if err != nil {
				return err
			}
			w, ok := cfg.Scoring.Weights.Apply(u)
			if !ok {
				return fmt.Errorf("--weights must set every key, missing: %s", strings.Join(u.Missing(), ", "))
			}
			cfg.Scoring.Weights = w
		}
		appConfig = cfg
		return nil
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of domainhunter.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "domainhunter v%s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.domainhunter/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&weightsArg, "weights", "", "scoring weights, e.g. seo=0.4,content=0.3,brandability=0.2,spam_penalty=0.1")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".domainhunter"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DOMAINHUNTER_*, with nested
	// keys joined by underscores (DOMAINHUNTER_SERVER_ADDR).
	viper.SetEnvPrefix("DOMAINHUNTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := registerDefaults(viper.GetViper(), model.DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering config defaults: %v\n", err)
	}

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from defaults, the
// config file, environment and bound flags.
func loadConfig() (*model.Config, error) {
	return decodeConfig(viper.GetViper())
}

func decodeConfig(v *viper.Viper) (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// registerDefaults declares every config key with its default so that
// environment variables can override keys absent from the config file.
func registerDefaults(v *viper.Viper, cfg *model.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("unmarshal defaults: %w", err)
	}
	setDefaults(v, "", tree)
	return nil
}

func setDefaults(v *viper.Viper, prefix string, tree map[string]any) {
	for key, value := range tree {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if sub, ok := value.(map[string]any); ok {
			setDefaults(v, full, sub)
			continue
		}
		v.SetDefault(full, value)
	}
}
