package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "content-analysis", cfg.Service.Name)
	assert.Equal(t, "127.0.0.1", cfg.Service.Host)
	assert.Equal(t, 3000, cfg.Service.Port)
	assert.Equal(t, 60, cfg.RateLimit.GlobalPerMinute)
	assert.Equal(t, 30, cfg.RateLimit.AnalyzePerMinute)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
service:
  host: 0.0.0.0
  port: 8080
auth:
  api_key: file-secret
rate_limit:
  analyze_per_minute: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Service.Host)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, "file-secret", cfg.Auth.APIKey)
	assert.Equal(t, 10, cfg.RateLimit.AnalyzePerMinute)
	// Unset fields still get defaults.
	assert.Equal(t, 60, cfg.RateLimit.GlobalPerMinute)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  port: 8080\n"), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, "env-secret", cfg.Auth.APIKey)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Service.Port)
}

func TestLoad_BadIntEnvIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Service.Port)
}
