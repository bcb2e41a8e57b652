package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	// Provider selects the generative backend: "gemini" or "openai".
	Provider string

	// APIKey is the backend credential. Absence is not fatal at startup;
	// it produces the api_error application state and disables the
	// messenger for the session.
	APIKey string

	ModelName      string
	ImageModelName string

	// Locale drives the relocation-ETA clock format (BCP 47 tag).
	Locale string

	Environment string
	LogLevel    slog.Level
}

func Load() *Config {
	return &Config{
		Provider:       getEnv("LLM_PROVIDER", "gemini"),
		APIKey:         getEnv("API_KEY", ""),
		ModelName:      getEnv("MODEL_NAME", ""),
		ImageModelName: getEnv("IMAGE_MODEL_NAME", ""),
		Locale:         getEnv("LOCALE", "en-US"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
