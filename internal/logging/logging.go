// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ppiankov/domainhunter/internal/model"
)

// Setup points the global logger at stderr in the configured format and
// sets the global level. verbose forces debug regardless of cfg.Level.
func Setup(cfg model.LogConfig, verbose bool) error {
	return setup(os.Stderr, cfg, verbose)
}

func setup(w io.Writer, cfg model.LogConfig, verbose bool) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	var out io.Writer
	switch strings.ToLower(cfg.Format) {
	case "", "console":
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		}
	case "json":
		out = w
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", cfg.Format)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
	return nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}
