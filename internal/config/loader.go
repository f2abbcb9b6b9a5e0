package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if BERTH_CONFIG is set
//  3. env (prefix BERTH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("BERTH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: BERTH_ADDR, BERTH_QUEUE_SIZE, ...
	// Keys map to the koanf tags with underscores preserved.
	envProvider := env.Provider("BERTH_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "berth_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.Store {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
	if c.Store == StoreSQLite && c.DBPath == "" {
		return fmt.Errorf("%w: db_path must not be empty for the sqlite store", ErrInvalidConfig)
	}
	if c.MaxTopN < 1 {
		return fmt.Errorf("%w: max_top_n must be positive", ErrInvalidConfig)
	}
	return nil
}
