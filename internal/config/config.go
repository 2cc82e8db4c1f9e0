package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // API key for authentication
	// LogDir receives a copy of the log in per-run session files when set
	LogDir string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// CatalogCacheTTL bounds how long a catalog snapshot is reused
	CatalogCacheTTL time.Duration
	// CatalogSource is a file path or s3://bucket/key imported at startup when set
	CatalogSource string
	// CatalogSyncInterval re-imports CatalogSource periodically. Zero disables it.
	CatalogSyncInterval time.Duration
	AWSRegion           string

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := LoadForTools()
	if err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// LoadForTools loads the same configuration as Load without requiring an
// API key. Command line tools that never serve HTTP use it.
func LoadForTools() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		APIKey:      getEnv("API_KEY", ""),
		LogDir:      getEnv("LOG_DIR", ""),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", DefaultDBName),

		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogCacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),
		CatalogSource:   getEnv("CATALOG_SOURCE", ""),

		CatalogSyncInterval: getEnvAsDuration("CATALOG_SYNC_INTERVAL", 0),
		AWSRegion:           getEnv("AWS_REGION", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration falls back to defaultValue when the variable is unset or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
