package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_LEMLIST_KEY", "secret-key")

	path := writeConfig(t, `
platforms:
  lemlist:
    base_url: https://api.lemlist.com
    api_key: ${TEST_LEMLIST_KEY}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.Platforms["lemlist"].APIKey)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
platforms:
  lemlist:
    base_url: https://api.lemlist.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, 30, cfg.Sync.DefaultLookbackDays)
	assert.Equal(t, 4, cfg.Sync.MaxConcurrentJobs)
	assert.Equal(t, time.Hour, cfg.Scheduler.Interval)
	assert.Equal(t, "info", cfg.LogLevel)

	lemlist := cfg.Platforms["lemlist"]
	assert.Equal(t, 100, lemlist.PageSize)
	assert.Equal(t, 30*time.Second, lemlist.Timeout)
	assert.Equal(t, float64(2), lemlist.RateLimit.RequestsPerSecond)
	assert.Equal(t, 2*time.Minute, lemlist.RateLimit.MaxWait)
}

func TestDefaultNamespace(t *testing.T) {
	path := writeConfig(t, `
namespaces:
  - name: sales
    storage_target: sales_events
    active: true
  - name: recruiting
    storage_target: recruiting_events
    active: true
    default: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "recruiting", cfg.DefaultNamespace())
}

func TestDefaultNamespaceFallsBackToFirst(t *testing.T) {
	path := writeConfig(t, `
namespaces:
  - name: sales
    storage_target: sales_events
    active: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sales", cfg.DefaultNamespace())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
