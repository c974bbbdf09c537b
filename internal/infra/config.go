package infra

import (
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv        string
	Port          string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	// GeminiTimeout bounds a single upstream generation call. There is no
	// overall request deadline, so a batch can take up to eight times this.
	GeminiTimeout time.Duration
	// GenerateConcurrency caps in-flight upstream calls per batch. 1 means
	// strictly sequential fan-out.
	GenerateConcurrency int
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. The Gemini API key is deliberately not required at
// startup: its absence surfaces per request as a configuration error instead
// of preventing the server from booting.
func LoadConfig() *Config {
	return &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                getEnv("PORT", "8080"),
		GeminiAPIKey:        os.Getenv("GOOGLE_AI_STUDIO_API_KEY"),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GeminiBaseURL:       getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiTimeout:       time.Second * time.Duration(getEnvInt("GEMINI_TIMEOUT_SECONDS", 120)),
		GenerateConcurrency: getEnvIntMin("GENERATE_CONCURRENCY", 1, 1),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 30)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 0)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 120)),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvIntMin(key string, fallback, min int) int {
	v := getEnvInt(key, fallback)
	if v < min {
		return min
	}
	return v
}
