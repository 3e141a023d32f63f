package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Directory.RefreshInterval)
	assert.Equal(t, "id_app_user", cfg.Session.StorageKey)
	assert.Equal(t, 99, cfg.Payments.ApplicationFee)
	assert.Equal(t, "INR", cfg.Payments.Currency)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 30, cfg.LLM.RateLimit)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
payments:
  application_fee: 199
gateway:
  base_url: "https://example.com/exec"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 199, cfg.Payments.ApplicationFee)
	assert.Equal(t, "https://example.com/exec", cfg.Gateway.BaseURL)
	// untouched sections keep their defaults
	assert.Equal(t, "INR", cfg.Payments.Currency)
}

func TestEnvOverridesBeatYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("payments:\n  application_fee: 199\n"), 0o644))

	t.Setenv("APPLICATION_FEE", "299")
	t.Setenv("GATEWAY_BASE_URL", "https://env.example.com/exec")
	t.Setenv("SESSION_TTL", "48h")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 299, cfg.Payments.ApplicationFee)
	assert.Equal(t, "https://env.example.com/exec", cfg.Gateway.BaseURL)
	assert.Equal(t, 48*time.Hour, cfg.Session.TTL)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_GATEWAY_URL", "https://expanded.example.com")

	assert.Equal(t, "https://expanded.example.com", expandEnvVars("${TEST_GATEWAY_URL}"))
	assert.Equal(t, "https://expanded.example.com", expandEnvVars("$TEST_GATEWAY_URL"))
	assert.Equal(t, "${UNSET_VAR_XYZ}", expandEnvVars("${UNSET_VAR_XYZ}"), "unset variables stay literal")
}
