package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "hospital")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "hospital_db")
}

func TestLoad_Defaults(t *testing.T) {
	setDBEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.EqualValues(t, 10, cfg.DBMaxConns)
	assert.EqualValues(t, 1, cfg.DBMinConns)
	assert.Equal(t, 5, cfg.DBConnectRetries)
	assert.Equal(t, 5*time.Second, cfg.DBConnectRetryPeriod)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "password123", cfg.SeedPassword)
	assert.Equal(t, "host=localhost port=5432 user=hospital password=secret dbname=hospital_db sslmode=disable", cfg.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	setDBEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_CONNECT_RETRY_INTERVAL", "250ms")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://clinic.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.Equal(t, "9000", cfg.Port)
	assert.EqualValues(t, 25, cfg.DBMaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.DBConnectRetryPeriod)
	assert.Equal(t, []string{"http://localhost:3000", "https://clinic.example.com"}, cfg.CORSOrigins)
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/hospital")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/hospital", cfg.DSN())
}

func TestLoad_MissingDatabaseSettings(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger_Level(t *testing.T) {
	logger := NewLogger(&Config{Env: "production", LogLevel: "warn"})
	assert.Equal(t, "warn", logger.GetLevel().String())

	logger = NewLogger(&Config{Env: "production", LogLevel: "loud"})
	assert.Equal(t, "info", logger.GetLevel().String())
}
