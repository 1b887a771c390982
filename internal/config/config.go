package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	API         APIConfig
	Logging     LoggingConfig
	Tracing     TracingConfig
	ConfigDir   string
	Environment string
}

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	CacheTTL  time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

type TracingConfig struct {
	Enabled      bool
	Exporter     string
	ServiceName  string
	OTLPEndpoint string
	SampleRate   float64
}

func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL:   getEnv("CPD_API_URL", "https://api.cpdevents.io/v1"),
			Timeout:   time.Duration(getEnvInt("CPD_API_TIMEOUT_SECONDS", 15)) * time.Second,
			RateLimit: getEnvFloat("CPD_API_RATE_LIMIT", 10),
			CacheTTL:  time.Duration(getEnvInt("CPD_API_CACHE_TTL_SECONDS", 30)) * time.Second,
		},
		Logging: LoggingConfig{
			Level:  getEnv("CPD_LOG_LEVEL", "warn"),
			Format: getEnv("CPD_LOG_FORMAT", "console"),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvBool("CPD_TRACING_ENABLED", false),
			Exporter:     getEnv("CPD_TRACING_EXPORTER", "stdout"),
			ServiceName:  getEnv("CPD_TRACING_SERVICE_NAME", "cpd-events-cli"),
			OTLPEndpoint: getEnv("CPD_TRACING_OTLP_ENDPOINT", "localhost:4317"),
			SampleRate:   getEnvFloat("CPD_TRACING_SAMPLE_RATE", 1.0),
		},
		ConfigDir:   getEnv("CPD_CONFIG_DIR", defaultConfigDir()),
		Environment: getEnv("CPD_ENVIRONMENT", "production"),
	}

	return cfg, nil
}

func defaultConfigDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "cpd")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cpd"
	}
	return filepath.Join(home, ".cpd")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
