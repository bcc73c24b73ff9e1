package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// insecureDefaultSecret is used when JWT_SECRET is unset. Deployments must
// override it; startup logs a warning when the fallback is active.
const insecureDefaultSecret = "your-secret-key"

const defaultTokenTTL = 5 * time.Hour

// Config holds all runtime configuration, loaded once at startup.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL string
	RedisURL    string

	KafkaBrokers []string

	JWT JWTConfig
}

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	Secret          string
	TokenTTL        time.Duration
	InsecureDefault bool
}

// LoadConfig reads configuration from the environment. A .env file is loaded
// first when present so local development matches deployed behavior.
func LoadConfig() (*Config, error) {
	// Ignore error: .env is optional outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	secret := getEnv("JWT_SECRET", "")
	cfg.JWT = JWTConfig{
		Secret:          secret,
		TokenTTL:        parseDuration(getEnv("TOKEN_TTL", ""), defaultTokenTTL),
		InsecureDefault: secret == "",
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = insecureDefaultSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
