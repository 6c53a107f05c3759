package config_test

import (
	"testing"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnv(t *testing.T) {
	// Koanf keys use "." nesting, so the env var names carry the dot too.
	t.Setenv("PERSONAPI_SERVER.PORT", "9191")
	t.Setenv("PERSONAPI_PRIMARY.ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Primary.Env)
	assert.False(t, cfg.IsDevelopment())

	// Unset values still fall back to defaults.
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
}
