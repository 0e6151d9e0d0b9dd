// Package logging configures zerolog for the swgen CLI and for library callers
// that want the same console output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel names the environment variable consulted by LevelFromEnv.
const EnvLevel = "LOG_LEVEL"

// Config configures a logger.
type Config struct {
	// Level is one of trace, debug, info, warn, error. Empty means info.
	Level string

	// Format is console or json. Empty means console.
	Format string

	// Output defaults to os.Stderr so generated scripts printed to stdout stay
	// clean.
	Output io.Writer

	// NoColor disables ANSI colours in console output.
	NoColor bool
}

// New builds a zerolog.Logger for cfg.
func New(cfg Config) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("logging: invalid format %q (must be console or json)", cfg.Format)
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(level), nil
}

// Setup builds a logger and installs it as the global zerolog logger.
func Setup(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}

// ParseLevel converts a level name to a zerolog.Level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("logging: invalid level %q", level)
	}
}

// LevelFromEnv returns the LOG_LEVEL value, or fallback when unset.
func LevelFromEnv(fallback string) string {
	if value := strings.TrimSpace(os.Getenv(EnvLevel)); value != "" {
		return value
	}
	return fallback
}
