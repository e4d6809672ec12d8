package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.API.Port)
	assert.Equal(t, "release", cfg.API.Mode)
	assert.Equal(t, "quickhire", cfg.Database.Name)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 20, cfg.RateLimit.ApplicationsPerHour)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.API.Origins())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("FRONTEND_URL", "https://jobs.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.example.com, http://localhost:3000")
	t.Setenv("POSTGRES_DB", "board")
	t.Setenv("DATABASE_PORT", "6543")
	t.Setenv("RATE_LIMIT_APPLICATIONS_PER_HOUR", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.API.Port)
	assert.Equal(t, 0, cfg.RateLimit.ApplicationsPerHour)
	assert.Equal(t, []string{
		"https://jobs.example.com",
		"http://localhost:3000",
		"http://localhost:3001",
		"https://admin.example.com",
	}, cfg.API.Origins())
	assert.Contains(t, cfg.Database.DSN(), "dbname=board")
	assert.Contains(t, cfg.Database.DSN(), "port=6543")
}

func TestLoad_APIPortWinsOverPort(t *testing.T) {
	t.Setenv("API_PORT", "8081")
	t.Setenv("PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.API.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GIN_MODE", "verbose")
	_, err := Load()
	assert.Error(t, err)
}
