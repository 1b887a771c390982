package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CPD_API_URL", "CPD_API_TIMEOUT_SECONDS", "CPD_API_RATE_LIMIT",
		"CPD_API_CACHE_TTL_SECONDS", "CPD_LOG_LEVEL", "CPD_LOG_FORMAT",
		"CPD_TRACING_ENABLED", "CPD_ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api.cpdevents.io/v1" {
		t.Errorf("unexpected default API URL: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.API.Timeout)
	}
	if cfg.API.RateLimit != 10 {
		t.Errorf("unexpected default rate limit: %v", cfg.API.RateLimit)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("unexpected default log level: %s", cfg.Logging.Level)
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing should default to disabled")
	}
	if cfg.ConfigDir == "" {
		t.Error("config dir must never be empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CPD_API_URL", "http://localhost:8000/v1")
	t.Setenv("CPD_API_TIMEOUT_SECONDS", "5")
	t.Setenv("CPD_API_RATE_LIMIT", "2.5")
	t.Setenv("CPD_LOG_LEVEL", "debug")
	t.Setenv("CPD_CONFIG_DIR", "/tmp/cpd-test")
	t.Setenv("CPD_TRACING_ENABLED", "true")
	t.Setenv("CPD_TRACING_EXPORTER", "otlp")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8000/v1" {
		t.Errorf("unexpected API URL: %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.API.Timeout)
	}
	if cfg.API.RateLimit != 2.5 {
		t.Errorf("unexpected rate limit: %v", cfg.API.RateLimit)
	}
	if cfg.ConfigDir != "/tmp/cpd-test" {
		t.Errorf("unexpected config dir: %s", cfg.ConfigDir)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.Exporter != "otlp" {
		t.Errorf("unexpected tracing config: %+v", cfg.Tracing)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("CPD_API_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("CPD_API_RATE_LIMIT", "fast")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("invalid timeout should fall back to default, got %v", cfg.API.Timeout)
	}
	if cfg.API.RateLimit != 10 {
		t.Errorf("invalid rate limit should fall back to default, got %v", cfg.API.RateLimit)
	}
}
