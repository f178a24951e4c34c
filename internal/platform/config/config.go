package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DBDriver      string
	DatabaseURL   string
	SQLiteDSN     string
	EnableDBCheck bool

	JWTSecret string
	JWTIssuer string

	// External shop backend that owns products, parts and tickets
	BackendBaseURL string
	BackendTimeout time.Duration

	FrontendBaseURL string
	RateLimit       string

	ImportMaxBytes      int64
	ImportArchiveBucket string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_DRIVER", DriverSQLite)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_DSN", "file:mobilepos.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "mobilepos-backend")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("IMPORT_MAX_BYTES", 5<<20)
	viper.SetDefault("IMPORT_ARCHIVE_BUCKET", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		DBDriver:            strings.ToLower(viper.GetString("DB_DRIVER")),
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		SQLiteDSN:           viper.GetString("SQLITE_DSN"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		JWTIssuer:           viper.GetString("JWT_ISSUER"),
		BackendBaseURL:      strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/"),
		FrontendBaseURL:     viper.GetString("FRONTEND_BASE_URL"),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		ImportMaxBytes:      viper.GetInt64("IMPORT_MAX_BYTES"),
		ImportArchiveBucket: viper.GetString("IMPORT_ARCHIVE_BUCKET"),
		PosthogAPIKey:       viper.GetString("POSTHOG_API_KEY"),
	}

	timeoutStr := viper.GetString("BACKEND_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for BACKEND_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.BackendTimeout = timeout

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when DB_DRIVER is %s", DriverPostgres)
		}
	case DriverSQLite:
		if cfg.SQLiteDSN == "" {
			return nil, fmt.Errorf("SQLITE_DSN must be set when DB_DRIVER is %s", DriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}
