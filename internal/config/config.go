// Package config manages environment variables.
//
// It reads variables from the `.env` file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Apply sane defaults so the API runs with zero env set.
//   - Validate the resulting config so the app fails fast on bad values.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// process env before anything reads env vars. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator
// after defaults are applied.
//
// Env vars are read using the PERSONAPI_ prefix and nested via the "."
// delimiter, e.g. PERSONAPI_SERVER.PORT -> server.port -> Config.Server.Port.
type Config struct {
	Primary Primary      `koanf:"primary" validate:"required"`
	Server  ServerConfig `koanf:"server" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch log formatting based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as ints (seconds) and converted to time.Duration
// where the http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,gt=0"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,gt=0"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,gt=0"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// applyDefaults fills in any zero-valued field with its default.
//
// This API has no required external services, so every knob has a
// working default and the binary can start with an empty environment.
func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "development"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}
}

// Load reads configuration from environment variables, unmarshals it into
// Config, applies defaults, validates, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix PERSONAPI_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Applies defaults for anything unset
//   - Validates the filled struct
//
// NOTE: this function logs fatally on errors, so a broken environment
// stops the process before the server ever binds a port.
func Load() (*Config, error) {
	// Bootstrap logger for config-time failures only.
	// The real application logger is built later from the loaded config.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	// Load environment variables into koanf. Only vars with the
	// PERSONAPI_ prefix are read; the prefix is stripped and the rest
	// lowercased to produce koanf keys.
	err := k.Load(env.Provider("PERSONAPI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PERSONAPI_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	// Using "" unmarshals everything from the root.
	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	applyDefaults(mainConfig)

	// Validate the entire config struct recursively against the
	// `validate` tags. Any out-of-range value stops startup.
	validate := validator.New()
	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	return mainConfig, nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Primary.Env == "development"
}
