package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build reads
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example that must not reach a real deployment
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// RequiredEnvVars lists the variables the server refuses to start without.
// The schema version stays first.
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

var durationEnvVars = []string{
	"DB_MAX_CONN_IDLE_TIME",
	"DB_MAX_CONN_LIFETIME",
	"CATALOG_CACHE_TTL",
	"CATALOG_SYNC_INTERVAL",
}

// ValidateEnv checks the schema version and the required variables. Load
// falls back to defaults for malformed optional values, so those are
// reported here too. All problems are returned joined.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var errs []error

	var missing []string
	for _, key := range RequiredEnvVars[1:] {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	for _, key := range []string{"PORT", "DB_PORT", "DB_MAX_CONNS"} {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err != nil || n <= 0 {
				errs = append(errs, fmt.Errorf("%s must be a positive integer, got %q", key, v))
			}
		}
	}

	for _, key := range durationEnvVars {
		if v := os.Getenv(key); v != "" {
			if _, err := time.ParseDuration(v); err != nil {
				errs = append(errs, fmt.Errorf("%s is not a duration: %q", key, v))
			}
		}
	}

	for _, cidr := range getEnvAsList("TRUSTED_PROXIES") {
		if _, err := netip.ParsePrefix(cidr); err != nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not a CIDR", cidr))
		}
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and also reports settings that
// work but are probably a mistake
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	source := os.Getenv("CATALOG_SOURCE")
	if strings.HasPrefix(source, "s3://") && os.Getenv("AWS_REGION") == "" {
		warnings = append(warnings, "CATALOG_SOURCE points at S3 but AWS_REGION is unset - the SDK default region chain will be used")
	}
	if source == "" && os.Getenv("CATALOG_SYNC_INTERVAL") != "" {
		warnings = append(warnings, "CATALOG_SYNC_INTERVAL is set without CATALOG_SOURCE - nothing will be synced")
	}

	return warnings, nil
}
