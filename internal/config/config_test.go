package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "expenses.db", cfg.Database.DSN())
	assert.Equal(t, "expense-tracker-v1", cfg.Offline.CacheVersion)
	assert.True(t, cfg.Offline.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "tracker")
	t.Setenv("OFFLINE_CACHE_VERSION", "expense-tracker-v2")
	t.Setenv("OFFLINE_FETCH_TIMEOUT", "3s")
	t.Setenv("OFFLINE_BREAKER_FAILURES", "5")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Contains(t, cfg.Database.DSN(), "host=db")
	assert.Contains(t, cfg.Database.DSN(), "dbname=tracker")
	assert.Equal(t, "expense-tracker-v2", cfg.Offline.CacheVersion)
	assert.Equal(t, 3*time.Second, cfg.Offline.FetchTimeout)
	assert.Equal(t, 5, cfg.Offline.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.Offline.BreakerReset)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "lots")
	t.Setenv("OFFLINE_CACHE_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 20, cfg.Security.RateLimitPerSecond)
	assert.True(t, cfg.Offline.Enabled)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Load()
	cfg.Database.Driver = "mysql"
	cfg.Offline.CacheVersion = ""
	cfg.Security.RateLimitPerSecond = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
	assert.Contains(t, err.Error(), "OFFLINE_CACHE_VERSION")
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_SECOND")
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := Load()

	cfg.Server.Environment = "production"
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = "9000"
	assert.Equal(t, "0.0.0.0:9000", cfg.Address())
}
