package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/edugate")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "deploy-secret")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.JWT.Secret != "deploy-secret" || cfg.JWT.InsecureDefault {
		t.Errorf("unexpected jwt config: %+v", cfg.JWT)
	}
	if cfg.JWT.TokenTTL != 2*time.Hour {
		t.Errorf("expected 2h ttl, got %s", cfg.JWT.TokenTTL)
	}
	if len(cfg.KafkaBrokers) != 2 {
		t.Errorf("expected 2 brokers, got %v", cfg.KafkaBrokers)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/edugate")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.JWT.InsecureDefault {
		t.Error("unset JWT_SECRET should be flagged as insecure")
	}
	if cfg.JWT.TokenTTL != defaultTokenTTL {
		t.Errorf("expected default ttl %s, got %s", defaultTokenTTL, cfg.JWT.TokenTTL)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig should fail without DATABASE_URL")
	}
}
