package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite:members.db")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestDatabase(t *testing.T) {
	cases := []struct {
		url    string
		driver string
		dsn    string
	}{
		{url: "postgres://u:p@host/db", driver: DriverPostgres, dsn: "postgres://u:p@host/db"},
		{url: "postgresql://host/db", driver: DriverPostgres, dsn: "postgresql://host/db"},
		{url: "sqlite:members.db", driver: DriverSQLite, dsn: "members.db"},
		{url: "file:members.db?cache=shared", driver: DriverSQLite, dsn: "file:members.db?cache=shared"},
	}
	for _, tc := range cases {
		driver, dsn, err := Config{DatabaseURL: tc.url}.Database()
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.driver, driver, tc.url)
		assert.Equal(t, tc.dsn, dsn, tc.url)
	}

	_, _, err := Config{DatabaseURL: "mysql://x"}.Database()
	assert.Error(t, err)
}

func TestLoadClient(t *testing.T) {
	t.Setenv("SHIFT_API_BASE_URL", "http://gateway.test:9000/")
	cfg := LoadClient()
	assert.Equal(t, "http://gateway.test:9000", cfg.BaseURL)

	t.Setenv("SHIFT_API_BASE_URL", "")
	assert.Equal(t, "http://localhost:8080", LoadClient().BaseURL)
}
