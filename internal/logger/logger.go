// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logging. The logger is built once from
// the observability config and shared through the server container; request
// handling derives request-scoped child loggers from it.
package logger

import (
	"os"

	"github.com/deppfellow/resource-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the application logger from config.
//
// Behavior:
//   - level comes from observability config (with per-environment defaults)
//   - "console" format writes human-friendly output to STDERR (local dev)
//   - anything else writes JSON to STDOUT (for log pipelines)
//   - every entry carries timestamp, service name, and environment
func New(cfg *config.Config) *zerolog.Logger {
	// Lets Event.Stack() render stack traces for errors wrapped with
	// github.com/pkg/errors.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		// Config validation already rejected unknown levels, but if this is
		// ever called with a hand-built config, fall back to info.
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Observability.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}
