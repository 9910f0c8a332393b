package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, "properties", cfg.MongoCollection)
	assert.Equal(t, 30*time.Second, cfg.ServerTimeout)
	assert.Equal(t, 10*time.Second, cfg.MongoConnectTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://127.0.0.1:9090/api", cfg.DashboardAPIBaseURL)
	assert.True(t, cfg.DashboardEnabled)
	assert.False(t, cfg.DBAutoMigrate)
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/listings.db")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DASHBOARD_API_BASE_URL", "http://api.internal/api")
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/listings.db", cfg.SQLitePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://api.internal/api", cfg.DashboardAPIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.DashboardRequestTimeout)
}

func TestLoad_DurationsFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SERVER_TIMEOUT_SECONDS", "45")
	t.Setenv("MONGO_CONNECT_TIMEOUT_SECONDS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME_MINUTES", "15")
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT_SECONDS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, cfg.ServerTimeout)
	assert.Equal(t, 3*time.Second, cfg.MongoConnectTimeout)
	assert.Equal(t, 15*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, 7*time.Second, cfg.DashboardRequestTimeout)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported STORE_DRIVER")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable", DBTimezone: "UTC"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC", cfg.PostgresDSN())
}
