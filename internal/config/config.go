// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for STORE_DRIVER.
const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode       string        `mapstructure:"GIN_MODE"`
	ServerHost    string        `mapstructure:"SERVER_HOST"`
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	ServerTimeout time.Duration `mapstructure:"-"` // SERVER_TIMEOUT_SECONDS

	// Store selection
	StoreDriver string `mapstructure:"STORE_DRIVER"`

	// Document store (MongoDB)
	MongoURI            string        `mapstructure:"MONGO_URI"`
	MongoDatabase       string        `mapstructure:"MONGO_DATABASE"`
	MongoCollection     string        `mapstructure:"MONGO_COLLECTION"`
	MongoConnectTimeout time.Duration `mapstructure:"-"` // MONGO_CONNECT_TIMEOUT_SECONDS

	// SQL Database Configuration (postgres / sqlite drivers)
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"-"` // DB_CONN_MAX_LIFETIME_MINUTES
	SQLitePath        string        `mapstructure:"SQLITE_PATH"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// HTTP
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Dashboard
	DashboardEnabled        bool          `mapstructure:"DASHBOARD_ENABLED"`
	DashboardAPIBaseURL     string        `mapstructure:"DASHBOARD_API_BASE_URL"`
	DashboardRequestTimeout time.Duration `mapstructure:"-"` // DASHBOARD_REQUEST_TIMEOUT_SECONDS
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)

	v.SetDefault("STORE_DRIVER", StoreDriverMongo)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "real_estate")
	v.SetDefault("MONGO_COLLECTION", "properties")
	v.SetDefault("MONGO_CONNECT_TIMEOUT_SECONDS", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "real_estate")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)
	v.SetDefault("SQLITE_PATH", "real_estate.db")
	v.SetDefault("DB_AUTO_MIGRATE", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DASHBOARD_ENABLED", true)
	v.SetDefault("DASHBOARD_API_BASE_URL", "")
	v.SetDefault("DASHBOARD_REQUEST_TIMEOUT_SECONDS", 60)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Duration fields are read as whole numbers of seconds or minutes.
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.MongoConnectTimeout = time.Duration(v.GetInt("MONGO_CONNECT_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.DashboardRequestTimeout = time.Duration(v.GetInt("DASHBOARD_REQUEST_TIMEOUT_SECONDS")) * time.Second

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if cfg.DashboardAPIBaseURL == "" {
		// The dashboard talks to this same process unless pointed elsewhere.
		host := cfg.ServerHost
		if host == "" || host == "0.0.0.0" {
			host = "127.0.0.1"
		}
		cfg.DashboardAPIBaseURL = fmt.Sprintf("http://%s:%s/api", host, cfg.ServerPort)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverMongo:
		if strings.TrimSpace(c.MongoURI) == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_DRIVER=%s", StoreDriverMongo)
		}
	case StoreDriverPostgres:
	case StoreDriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=%s", StoreDriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (expected %s, %s or %s)",
			c.StoreDriver, StoreDriverMongo, StoreDriverPostgres, StoreDriverSQLite)
	}
	return nil
}

// PostgresDSN builds the GORM DSN from the individual DB_* settings.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode, c.DBTimezone)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
