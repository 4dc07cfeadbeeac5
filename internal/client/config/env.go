package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// envOverlay mirrors Config with pointer fields so that only variables
// actually present in the environment overwrite earlier values.
type envOverlay struct {
	ServerBaseURL        *string        `env:"PROFILECTL_SERVER_URL,noinit"`
	RequestTimeout       *time.Duration `env:"PROFILECTL_REQUEST_TIMEOUT,noinit"`
	CredentialDBPath     *string        `env:"PROFILECTL_CREDENTIAL_DB,noinit"`
	SessionCheckInterval *time.Duration `env:"PROFILECTL_SESSION_CHECK_INTERVAL,noinit"`
	LogLevel             *string        `env:"PROFILECTL_LOG_LEVEL,noinit"`
	LogPretty            *bool          `env:"PROFILECTL_LOG_PRETTY,noinit"`
}

// parseEnv overlays Config with values from the process environment.
// Panics on unparseable values (caller should recover if desired).
func parseEnv(cfg *Config) {
	var eo envOverlay
	if err := envconfig.Process(context.Background(), &eo); err != nil {
		panic(err)
	}

	if eo.ServerBaseURL != nil {
		cfg.ServerBaseURL = *eo.ServerBaseURL
	}
	if eo.RequestTimeout != nil {
		cfg.RequestTimeout = *eo.RequestTimeout
	}
	if eo.CredentialDBPath != nil {
		cfg.CredentialDBPath = *eo.CredentialDBPath
	}
	if eo.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = *eo.SessionCheckInterval
	}
	if eo.LogLevel != nil {
		cfg.LogLevel = *eo.LogLevel
	}
	if eo.LogPretty != nil {
		cfg.LogPretty = *eo.LogPretty
	}
}
