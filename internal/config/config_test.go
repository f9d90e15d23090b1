package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wanderlust-app/backend/internal/config"
)

// TestLoad_defaults verifies that every optional env var falls back to its
// default when unset.
func TestLoad_defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "DATABASE_URL", "SEED_FILE",
		"ANTHROPIC_API_KEY", "ASSISTANT_BASE_URL", "ASSISTANT_MODEL",
		"ASSISTANT_MAX_TOKENS", "ASSISTANT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Empty(t, cfg.DatabaseURL)
	require.Empty(t, cfg.SeedFile)
	require.Empty(t, cfg.APIKey, "the raw credential has no env default")
	require.Equal(t, "https://api.anthropic.com", cfg.AssistantBaseURL)
	require.Equal(t, "claude-sonnet-4-20250514", cfg.AssistantModel)
	require.Equal(t, 4096, cfg.AssistantMaxTokens)
	require.Equal(t, 60*time.Second, cfg.AssistantTimeout)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/wanderlust")
	t.Setenv("SEED_FILE", "/data/EuropeTrip.json")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("ASSISTANT_BASE_URL", "http://localhost:8089")
	t.Setenv("ASSISTANT_MODEL", "claude-test")
	t.Setenv("ASSISTANT_MAX_TOKENS", "1024")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "postgres://user:pass@db:5432/wanderlust", cfg.DatabaseURL)
	require.Equal(t, "/data/EuropeTrip.json", cfg.SeedFile)
	require.Equal(t, "sk-test", cfg.APIKey)
	require.Equal(t, "http://localhost:8089", cfg.AssistantBaseURL)
	require.Equal(t, "claude-test", cfg.AssistantModel)
	require.Equal(t, 1024, cfg.AssistantMaxTokens)
	require.Equal(t, 5*time.Second, cfg.AssistantTimeout)
}

// TestLoad_badMaxTokens verifies that a non-numeric token budget is rejected
// with an error naming the variable.
func TestLoad_badMaxTokens(t *testing.T) {
	t.Setenv("ASSISTANT_MAX_TOKENS", "lots")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "ASSISTANT_MAX_TOKENS")
}
