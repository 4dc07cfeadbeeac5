package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://api.example.org", "-t", "5", "-d", "/tmp/cred.db", "-i", "30", "-l", "debug", "-p"},
			expected: &Config{
				ServerBaseURL:        "https://api.example.org",
				RequestTimeout:       5 * time.Second,
				CredentialDBPath:     "/tmp/cred.db",
				SessionCheckInterval: 30 * time.Second,
				LogLevel:             "debug",
				LogPretty:            true,
			},
		},
		{
			name:        "incorrect check interval",
			args:        []string{"cmd", "-a", "https://api.example.org", "-i", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestParseFlags_DefaultsSurviveWhenAbsent(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	config := &Config{}
	config.LoadDefaults()
	parseFlags(config)

	assert.Equal(t, "http://127.0.0.1:8080", config.ServerBaseURL)
	assert.Equal(t, 10*time.Second, config.RequestTimeout)
	assert.Equal(t, "info", config.LogLevel)
}
