package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "credentials.db", c.CredentialDBPath)
	assert.Equal(t, 60*time.Second, c.SessionCheckInterval)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.LogPretty)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	assert.Equal(t, 60*time.Second, cfg.SessionCheckInterval)
}

func Test_parseEnv_OverlaysOnlyPresentVariables(t *testing.T) {
	t.Setenv("PROFILECTL_SERVER_URL", "https://api.example.org")
	t.Setenv("PROFILECTL_SESSION_CHECK_INTERVAL", "30s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.org", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.SessionCheckInterval)
	// Untouched variables keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "credentials.db", cfg.CredentialDBPath)
}

func Test_parseEnv_InvalidDurationPanics(t *testing.T) {
	t.Setenv("PROFILECTL_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseEnv(cfg) })
}
