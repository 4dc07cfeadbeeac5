// Package config loads runtime configuration for the profilectl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv), prefixed PROFILECTL_.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-t int      request timeout (seconds)
//	-d string   path to the local credential database
//	-i int      session check interval (seconds)
//	-l string   log level
//	-p          pretty console log output
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "https://api.example.org",
//	  "request_timeout": "10s",
//	  "credential_db_path": "credentials.db",
//	  "session_check_interval": "60s",
//	  "log_level": "debug",
//	  "log_pretty": true
//	}
//
// Primary API
//
//   - type Config                     — holds all client settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
