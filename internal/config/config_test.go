package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RESOURCE_API_PRIMARY.ENV", "test")
	t.Setenv("RESOURCE_API_SERVER.PORT", "8080")
	t.Setenv("RESOURCE_API_SERVER.READ_TIMEOUT", "5")
	t.Setenv("RESOURCE_API_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("RESOURCE_API_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("RESOURCE_API_SERVER.CORS_ALLOWED_ORIGINS", "*")
	t.Setenv("RESOURCE_API_STORE.TABLE_NAME", "resources-dev")
	t.Setenv("RESOURCE_API_STORE.REGION", "eu-west-1")

	cfg := Load()

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	require.NotNil(t, cfg.Store)
	assert.Equal(t, "resources-dev", cfg.Store.TableName)
	assert.Equal(t, "eu-west-1", cfg.Store.Region)
	assert.Empty(t, cfg.Store.Endpoint)

	// Defaults injected for the absent observability block, with the
	// service name and environment forced.
	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "resource-api", cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadPartialStoreBlock(t *testing.T) {
	t.Setenv("RESOURCE_API_PRIMARY.ENV", "test")
	t.Setenv("RESOURCE_API_SERVER.PORT", "8080")
	t.Setenv("RESOURCE_API_SERVER.READ_TIMEOUT", "5")
	t.Setenv("RESOURCE_API_SERVER.WRITE_TIMEOUT", "10")
	t.Setenv("RESOURCE_API_SERVER.IDLE_TIMEOUT", "60")
	t.Setenv("RESOURCE_API_SERVER.CORS_ALLOWED_ORIGINS", "*")
	// Only the region is set, so the block is non-nil but incomplete.
	t.Setenv("RESOURCE_API_STORE.REGION", "us-east-1")

	cfg := Load()

	require.NotNil(t, cfg.Store)
	assert.Equal(t, "us-east-1", cfg.Store.Region)
	assert.Equal(t, DefaultTableName, cfg.Store.TableName)
}

func TestStoreConfigDefaults(t *testing.T) {
	cfg := DefaultStoreConfig()

	assert.Equal(t, "resources", cfg.TableName)
	assert.Empty(t, cfg.Region)
	assert.Empty(t, cfg.Endpoint)

	partial := &StoreConfig{Region: "ap-southeast-1"}
	partial.ApplyDefaults()
	assert.Equal(t, DefaultTableName, partial.TableName)
	assert.Equal(t, "ap-southeast-1", partial.Region)
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.HealthChecks.Timeout)

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg.Logging.Level = "warn"
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}

func TestObservabilityLogLevelDefaults(t *testing.T) {
	cfg := &ObservabilityConfig{Environment: "production"}
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.True(t, cfg.IsProduction())

	cfg = &ObservabilityConfig{Environment: "development"}
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.False(t, cfg.IsProduction())

	cfg = &ObservabilityConfig{Environment: "development", Logging: LoggingConfig{Level: "error"}}
	assert.Equal(t, "error", cfg.GetLogLevel())
}
