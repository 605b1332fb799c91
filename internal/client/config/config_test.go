package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patchArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"tjslctl"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "tjslctl.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv(envAPIBaseURL, "https://api.example.com/api")
	t.Setenv(envRequestTimeout, "10s")
	t.Setenv(envLogLevel, "debug")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://api.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "tjslctl.db", cfg.DatabasePath, "untouched fields keep defaults")
}

func TestParseEnv_IgnoresBadDuration(t *testing.T) {
	t.Setenv(envRequestTimeout, "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseJson_Overlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"api_base_url":"https://staging.example.com/api","request_timeout":"15s","log_level":"warn"}`,
	), 0o600))

	patchArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "https://staging.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseFlags_Overlays(t *testing.T) {
	patchArgs(t, "-a", "https://flags.example.com/api", "-t", "5", "-l", "error")

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "https://flags.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "error", cfg.LogLevel)
}
