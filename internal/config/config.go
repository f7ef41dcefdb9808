// ABOUTME: Garmin bridge configuration loaded from the environment.
// ABOUTME: Credentials are required at startup, before any query is served.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/garmin/internal/garmin"
)

// Config holds the account credentials and provider domain.
type Config struct {
	// Username is the Garmin Connect account email.
	Username string `env:"GARMIN_USERNAME"`

	// Password is the Garmin Connect account password. Never logged.
	Password string `env:"GARMIN_PASSWORD"`

	// Domain selects the provider region: garmin.com (default) or garmin.cn.
	Domain string `env:"GARMIN_DOMAIN" envDefault:"garmin.com"`
}

// Load reads configuration from the environment. Missing credentials fail
// here so the process refuses to start serving queries at all.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: GARMIN_USERNAME and GARMIN_PASSWORD must be set",
			garmin.ErrAuthentication)
	}
	return cfg, nil
}
