package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"BUILDINGS_PORT", "LOG_LEVEL", "LOG_FORMAT", "SEED_BUILDINGS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_EVENTS_STREAM", "REDIS_EVENTS_MAXLEN",
	"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_SSL",
	"SHUTDOWN_TIMEOUT",
}

// clearConfigEnv blanks every key for the duration of the test.
func clearConfigEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.SeedBuildings)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "buildings:events", cfg.RedisEventsStream)
	assert.Equal(t, int64(1000), cfg.RedisEventsMaxLen)
	assert.False(t, cfg.MinioEnabled())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("BUILDINGS_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_BUILDINGS", "false")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_EVENTS_MAXLEN", "50")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_ACCESS_KEY", "access")
	t.Setenv("MINIO_SECRET_KEY", "secret")
	t.Setenv("MINIO_BUCKET", "buildings")
	t.Setenv("MINIO_SSL", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SeedBuildings)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, int64(50), cfg.RedisEventsMaxLen)
	assert.True(t, cfg.MinioEnabled())
	assert.True(t, cfg.MinioSSL)
	assert.Equal(t, "buildings", cfg.MinioBucket)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	os.Unsetenv("LOG_FORMAT")
	os.Unsetenv("REDIS_EVENTS_STREAM")
	t.Cleanup(func() {
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("REDIS_EVENTS_STREAM")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_FORMAT=console\nREDIS_EVENTS_STREAM=audit:buildings\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "audit:buildings", cfg.RedisEventsStream)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	clearConfigEnv(t)
	t.Setenv("SEED_BUILDINGS", "maybe")
	_, err := LoadConfig(missing)
	assert.Error(t, err)

	clearConfigEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err = LoadConfig(missing)
	assert.Error(t, err)

	clearConfigEnv(t)
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	_, err = LoadConfig(missing)
	assert.EqualError(t, err, "minio configuration is incomplete")
}
