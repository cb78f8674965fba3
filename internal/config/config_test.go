package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[development]
port = 9100
log_level = "debug"
storage_backend = "memory"
time_zone = "Europe/Berlin"

[production]
host = "0.0.0.0"
port = 9000
storage_backend = "redis"
redis_host = "redis"
read_cache_size_mb = 32
agenda_window_days = 14
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageBackend)
	assert.Equal(t, 7, cfg.AgendaWindowDays)
	assert.Equal(t, 10, cfg.ImportRateLimitPerMin)
	assert.Equal(t, "Europe/Berlin", cfg.Location().String())

	cfg, err = Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, StorageRedis, cfg.StorageBackend)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "practicetracker", cfg.RedisNamespace)
	assert.Equal(t, 32, cfg.ReadCacheSizeMB)
	assert.Equal(t, 14, cfg.AgendaWindowDays)

	_, err = Load("staging", path)
	assert.ErrorContains(t, err, "unknown env")

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("development", "[development]\n")
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "practicetracker.db", cfg.SQLitePath)
	assert.Equal(t, "Local", cfg.TimeZone)

	_, err = Parse("production", "[development]\n")
	assert.ErrorContains(t, err, "no config section")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"backend", `storage_backend = "mongo"`, "unknown storage backend"},
		{"redis host", `storage_backend = "redis"`, "redis_host is required"},
		{"postgres", `storage_backend = "postgres"`, "postgres_host and postgres_db_name"},
		{"window", `agenda_window_days = 91`, "agenda_window_days"},
		{"cache", `read_cache_size_mb = -1`, "read_cache_size_mb"},
		{"zone", `time_zone = "Mars/Olympus"`, "time_zone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("dev", "[development]\n"+tt.data+"\n")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadSecrets(t *testing.T) {
	t.Setenv("TRACKER_REDIS_PASS", "pass")
	t.Setenv("TRACKER_API_TOKEN", "token")
	t.Setenv("HONEYCOMB_ENABLED", "true")

	s, err := LoadSecrets()
	require.NoError(t, err)
	assert.Equal(t, "pass", s.RedisPassword)
	assert.Equal(t, "token", s.APIToken)
	assert.True(t, s.HoneycombEnabled)
	assert.Equal(t, "practice-tracker", s.OtelServiceName)

	t.Setenv("HONEYCOMB_ENABLED", "maybe")
	_, err = LoadSecrets()
	assert.Error(t, err)
}
