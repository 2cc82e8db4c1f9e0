package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	for _, key := range RequiredEnvVars[1:] {
		t.Setenv(key, "test_value")
	}
	t.Setenv("DB_PORT", "5432")
	for _, key := range append([]string{"PORT", "DB_MAX_CONNS", "TRUSTED_PROXIES"}, durationEnvVars...) {
		t.Setenv(key, "")
	}
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("CATALOG_SYNC_INTERVAL", "")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("API_KEY", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables: DB_HOST, API_KEY")
}

func TestValidateEnv_OK(t *testing.T) {
	setRequiredEnv(t)
	assert.NoError(t, ValidateEnv())

	t.Setenv("PORT", "8080")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("CATALOG_CACHE_TTL", "2m")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.7/32")
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_NonNumericDBPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "test_value")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `DB_PORT must be a positive integer, got "test_value"`)
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")
	t.Setenv("CATALOG_SOURCE", "s3://arc-data/catalog.json")
	t.Setenv("AWS_REGION", "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "AWS_REGION")
}

func TestValidateEnv_MalformedValuesJoined(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("CATALOG_SYNC_INTERVAL", "hourly")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, not-a-cidr")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `PORT must be a positive integer, got "eighty"`)
	assert.Contains(t, err.Error(), `CATALOG_SYNC_INTERVAL is not a duration: "hourly"`)
	assert.Contains(t, err.Error(), `"not-a-cidr" is not a CIDR`)
	assert.NotContains(t, err.Error(), "10.0.0.0/8")
}

func TestValidateEnvWithWarnings_SyncWithoutSource(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CATALOG_SYNC_INTERVAL", "15m")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "nothing will be synced")
}
