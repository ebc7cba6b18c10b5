package model

import (
	"runtime"
	"time"
)

// Config is the full runtime configuration.
type Config struct {
	Scoring     ScoringConfig     `yaml:"scoring" mapstructure:"scoring"`
	Content     ContentConfig     `yaml:"content" mapstructure:"content"`
	SEO         SEOConfig         `yaml:"seo" mapstructure:"seo"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// SpamSource selects where the second spam-penalty term reads from.
type SpamSource string

const (
	// SpamSourceContent reads the content spam score for both penalty terms.
	SpamSourceContent SpamSource = "content"
	// SpamSourceSeparate reads the SEO provider's spam score for the second term.
	SpamSourceSeparate SpamSource = "separate"
)

// ScoringConfig configures the scorer.
type ScoringConfig struct {
	Weights    Weights    `yaml:"weights" mapstructure:"weights"`
	SpamSource SpamSource `yaml:"spam_source" mapstructure:"spam_source"`
}

// ContentConfig configures content acquisition and analysis.
type ContentConfig struct {
	DataDir            string `yaml:"data_dir" mapstructure:"data_dir"`
	MaxHistoricalChars int    `yaml:"max_historical_chars" mapstructure:"max_historical_chars"`
}

// SEOConfig selects the SEO metrics provider.
type SEOConfig struct {
	Provider    string `yaml:"provider" mapstructure:"provider"` // mock, file, none
	MetricsFile string `yaml:"metrics_file" mapstructure:"metrics_file"`
}

// CacheConfig configures provider caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskDir   string        `yaml:"disk_dir" mapstructure:"disk_dir"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig configures batch evaluation.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
	// RequestsPerSecond paces provider lookups across a batch; 0 disables pacing.
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr              string        `yaml:"addr" mapstructure:"addr"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	ReadTimeout       time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Format  string `yaml:"format" mapstructure:"format"` // json, md, both
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // console, json
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights:    DefaultWeights(),
			SpamSource: SpamSourceContent,
		},
		Content: ContentConfig{
			DataDir:            "",
			MaxHistoricalChars: 1000,
		},
		SEO: SEOConfig{
			Provider: "mock",
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskDir:   "",
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerSecond: 10,
			Burst:             20,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
		Output: OutputConfig{
			Dir:    "./domainhunter-reports",
			Format: "both",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
