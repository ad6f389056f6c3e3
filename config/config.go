package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	FrontendURL string
	// Gemini Configuration
	GeminiAPIKey string
	GeminiModel  string
	// Lead submission
	SubmitDelay time.Duration // Artificial pause joined with the strategy request
	// SMTP Configuration (advisor notifications)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Redis Configuration (market insight cache)
	RedisURL         string
	RedisPassword    string
	InsightsCacheTTL time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Older deployments expose the credential as API_KEY
		GeminiAPIKey: getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		SubmitDelay:  time.Duration(getEnvInt("SUBMIT_DELAY_MS", 2000)) * time.Millisecond,
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", "noreply@realtyuae.ae"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "info@realtyuae.ae"),
		// Redis Configuration
		RedisURL:         getEnv("REDIS_URL", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		InsightsCacheTTL: time.Duration(getEnvInt("INSIGHTS_CACHE_TTL_SECONDS", 3600)) * time.Second,
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is missing. Strategy and market data will use fallback content.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Market insights will be cached in memory.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in release mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
