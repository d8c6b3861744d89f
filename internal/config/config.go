package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Storage drivers selected from DATABASE_URL.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds gateway configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string
}

// ClientConfig holds dashboard configuration sourced from env vars.
type ClientConfig struct {
	BaseURL   string
	LogLevel  string
	LogFormat string
}

// Load reads gateway configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		LogLevel:    strings.ToUpper(fallback(os.Getenv("LOG_LEVEL"), "INFO")),
		LogFormat:   strings.ToLower(fallback(os.Getenv("LOG_FORMAT"), "text")),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if _, _, err := cfg.Database(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadClient reads dashboard configuration from the environment.
func LoadClient() ClientConfig {
	return ClientConfig{
		BaseURL:   strings.TrimRight(fallback(os.Getenv("SHIFT_API_BASE_URL"), "http://localhost:8080"), "/"),
		LogLevel:  strings.ToUpper(fallback(os.Getenv("LOG_LEVEL"), "WARN")),
		LogFormat: strings.ToLower(fallback(os.Getenv("LOG_FORMAT"), "text")),
	}
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// Database splits DATABASE_URL into a storage driver and its DSN.
func (c Config) Database() (driver, dsn string, err error) {
	url := c.DatabaseURL
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, url, nil
	case strings.HasPrefix(url, "sqlite:"):
		return DriverSQLite, strings.TrimPrefix(url, "sqlite:"), nil
	case strings.HasPrefix(url, "file:"):
		return DriverSQLite, url, nil
	default:
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", url)
	}
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
