package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	Env                 string
	DatabaseDSN         string
	JWTSecret           string
	TokenTTL            time.Duration
	RateLimit           string
	FirebaseCredentials string
}

// Load reads configuration from the environment once at startup. The signing
// secret and rate-limit rate are immutable for the process lifetime.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tokenTTL := 24 * time.Hour
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			tokenTTL = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "production"),
		DatabaseDSN:         getEnv("DATABASE_DSN", "host=localhost user=safeguardian password=safeguardian dbname=safeguardian port=5432 sslmode=disable"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:            tokenTTL,
		RateLimit:           getEnv("RATE_LIMIT", "1000-H"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
