package config

import (
	"os"
)

type Config struct {
	Port            string
	Environment     string
	SupabaseURL     string
	SupabaseDBURL   string
	SupabaseJWKSURL string // Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	CORSOrigins     string
	TablePrefix     string
	// Completion provider configuration
	GoogleAPIKey    string
	AnthropicAPIKey string
	DefaultProvider string
	DefaultModel    string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)
	supabaseURL := getEnv("SUPABASE_URL", "")

	// Construct JWKS URL from Supabase URL
	jwksURL := supabaseURL + "/auth/v1/.well-known/jwks.json"

	googleKey := getEnv("GOOGLE_API_KEY", "")
	anthropicKey := getEnv("ANTHROPIC_API_KEY", "")

	return &Config{
		Port:            getEnv("PORT", "8001"),
		Environment:     env,
		SupabaseURL:     supabaseURL,
		SupabaseDBURL:   getEnv("SUPABASE_DB_URL", ""),
		SupabaseJWKSURL: jwksURL,
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:     tablePrefix,
		GoogleAPIKey:    googleKey,
		AnthropicAPIKey: anthropicKey,
		DefaultProvider: getEnv("DEFAULT_PROVIDER", "gemini"),
		DefaultModel:    getEnv("DEFAULT_MODEL", defaultModel(googleKey, anthropicKey)),
	}
}

// defaultModel picks a model servable by the providers that actually have
// credentials, so a box with no API keys still boots against the lorem mock.
// An explicit DEFAULT_MODEL always wins.
func defaultModel(googleKey, anthropicKey string) string {
	switch {
	case googleKey != "":
		return "gemini-pro"
	case anthropicKey != "":
		return "claude-haiku-4-5"
	default:
		return "lorem-fast"
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
