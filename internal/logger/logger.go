// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logging. In development the logger
// writes a human-friendly console format; everywhere else it writes
// plain JSON lines so log collectors can parse them.
package logger

import (
	"os"
	"strings"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's main logger from config.
//
// Behavior:
//   - development env: console writer on stderr, Debug level
//   - staging/production: JSON on stdout, Info level
//   - PERSONAPI_LOG_LEVEL overrides the level when set (trace..panic)
//
// Every entry carries a timestamp and the service name, so multiple
// services sharing a log sink stay distinguishable.
func New(cfg *config.Config) *zerolog.Logger {
	var log zerolog.Logger

	if cfg.IsDevelopment() {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Str("service", "person-api").
			Logger()
	} else {
		log = zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Str("service", "person-api").
			Str("env", cfg.Primary.Env).
			Logger()
	}

	// Optional level override, independent of env.
	if raw := os.Getenv("PERSONAPI_LOG_LEVEL"); raw != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			log = log.Level(level)
		}
	}

	return &log
}
