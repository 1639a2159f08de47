package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/KirkDiggler/gem-battle/internal/errors"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GEMBATTLE_CONFIG is set
//  3. env (prefix GEMBATTLE_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GEMBATTLE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "failed to load config file")
		}
	}

	// Environment variables: GEMBATTLE_LOG_LEVEL, GEMBATTLE_REDIS_ADDR,
	// GEMBATTLE_BALANCE_HAND_SIZE, ...
	// Keys map to the flat koanf tags; the balance_ prefix nests under the
	// balance section.
	envProvider := env.Provider("GEMBATTLE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gembattle_")
		s = strings.Replace(s, "balance_", "balance.", 1)
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env config")
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the loaded values are playable
func (c *Config) Validate() error {
	if c.Balance.PlayerHealth <= 0 {
		return errors.InvalidArgument("player_health must be positive")
	}
	if c.Balance.PlayerStamina <= 0 {
		return errors.InvalidArgument("player_stamina must be positive")
	}
	if c.Balance.EnemyBaseHealth <= 0 {
		return errors.InvalidArgument("enemy_base_health must be positive")
	}
	if c.Balance.HandSize <= 0 {
		return errors.InvalidArgument("hand_size must be positive")
	}
	if c.Balance.HealthGrowth < 1 || c.Balance.AttackGrowth < 1 {
		return errors.InvalidArgument("growth factors cannot shrink enemies")
	}
	if c.Balance.BossInterval <= 0 {
		return errors.InvalidArgument("boss_interval must be positive")
	}
	return nil
}
