// Package config loads the demo's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the webstore demo.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Store StoreConfig
}

// StoreConfig mirrors webstore.Options plus backend/codec selection.
type StoreConfig struct {
	Type   string `env:"WEBSTORE_TYPE" envDefault:"local"`
	Prefix string `env:"WEBSTORE_PREFIX" envDefault:"test-app"`

	// Memory selects the memory variant: map, bigcache or ristretto.
	Memory string `env:"WEBSTORE_MEMORY" envDefault:"map"`
	// Codec selects the value encoding: json, cbor or msgpack.
	Codec string `env:"WEBSTORE_CODEC" envDefault:"json"`

	BigcacheMaxMB    int   `env:"WEBSTORE_BIGCACHE_MAX_MB" envDefault:"16"`
	RistrettoMaxCost int64 `env:"WEBSTORE_RISTRETTO_MAX_COST" envDefault:"67108864"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings. The store type itself is validated by
// webstore.New.
func (c *Config) Validate() error {
	switch c.Store.Memory {
	case "map", "bigcache", "ristretto":
	default:
		return fmt.Errorf("invalid WEBSTORE_MEMORY %q: want map, bigcache or ristretto", c.Store.Memory)
	}
	switch c.Store.Codec {
	case "json", "cbor", "msgpack":
	default:
		return fmt.Errorf("invalid WEBSTORE_CODEC %q: want json, cbor or msgpack", c.Store.Codec)
	}
	if c.Store.BigcacheMaxMB < 0 || c.Store.RistrettoMaxCost <= 0 {
		return fmt.Errorf("memory limits must be positive")
	}
	return nil
}
