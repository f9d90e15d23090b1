// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DatabaseURL is the Postgres connection string. Optional — when empty
	// the server runs on the in-memory document store.
	DatabaseURL string

	// SeedFile is a trip JSON file loaded into an empty store at startup.
	// Optional.
	SeedFile string

	// APIKey is the raw ANTHROPIC_API_KEY value. Fallback resolution
	// (user value, else bundled credential, else none) happens once, in
	// assistant.ResolveAPIKey.
	APIKey string

	// AssistantBaseURL is the text-generation service root.
	AssistantBaseURL string

	// AssistantModel is the model identifier sent with each request.
	AssistantModel string

	// AssistantMaxTokens is the response token budget.
	AssistantMaxTokens int

	// AssistantTimeout bounds each assistant call.
	AssistantTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Only malformed numeric values produce an error — every variable has a
// workable default.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		SeedFile:         os.Getenv("SEED_FILE"),
		APIKey:           os.Getenv("ANTHROPIC_API_KEY"),
		AssistantBaseURL: getEnv("ASSISTANT_BASE_URL", "https://api.anthropic.com"),
		AssistantModel:   getEnv("ASSISTANT_MODEL", "claude-sonnet-4-20250514"),
	}

	maxTokens, err := strconv.Atoi(getEnv("ASSISTANT_MAX_TOKENS", "4096"))
	if err != nil {
		return Config{}, fmt.Errorf("ASSISTANT_MAX_TOKENS must be an integer: %w", err)
	}
	cfg.AssistantMaxTokens = maxTokens

	timeout, err := time.ParseDuration(getEnv("ASSISTANT_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("ASSISTANT_TIMEOUT must be a duration: %w", err)
	}
	cfg.AssistantTimeout = timeout

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
