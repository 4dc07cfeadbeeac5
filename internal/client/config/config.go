package config

import "time"

// Config holds runtime settings for the profilectl CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - CredentialDBPath: path to the local SQLite credential store.
//   - SessionCheckInterval: how often the client probes session validity.
//   - LogLevel: zerolog level name (trace, debug, info, warn, error).
//   - LogPretty: human-readable console output instead of JSON.
type Config struct {
	ServerBaseURL        string
	RequestTimeout       time.Duration
	CredentialDBPath     string
	SessionCheckInterval time.Duration
	LogLevel             string
	LogPretty            bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.CredentialDBPath = "credentials.db"
	c.SessionCheckInterval = 60 * time.Second
	c.LogLevel = "info"
	c.LogPretty = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
