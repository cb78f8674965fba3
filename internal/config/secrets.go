package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Secrets never live in the TOML file.
type Secrets struct {
	RedisPassword    string `env:"TRACKER_REDIS_PASS"`
	PostgresPassword string `env:"TRACKER_POSTGRES_PASS"`
	APIToken         string `env:"TRACKER_API_TOKEN"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED" envDefault:"false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"practice-tracker"`
}

func LoadSecrets() (*Secrets, error) {
	var s Secrets
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &s, nil
}
