// Package config defines process configuration and loading.
//
// Conventions:
// - Provide New() building a Config with playable defaults.
// - Balance values live under their own section so a YAML file can tune
//   combat without touching process settings.
package config

// Balance contains the combat tuning values.
type Balance struct {
	// PlayerHealth and PlayerStamina are the per-battle starting pools.
	PlayerHealth  int32 `koanf:"player_health"`
	PlayerStamina int32 `koanf:"player_stamina"`

	// EnemyBaseHealth and EnemyBaseAttack are the day-1 enemy stats.
	EnemyBaseHealth int32 `koanf:"enemy_base_health"`
	EnemyBaseAttack int32 `koanf:"enemy_base_attack"`

	// HealthGrowth and AttackGrowth compound per elapsed day.
	HealthGrowth float64 `koanf:"health_growth"`
	AttackGrowth float64 `koanf:"attack_growth"`

	// HandSize is the number of gems dealt each turn.
	HandSize int `koanf:"hand_size"`

	// Rewards in zenny for a won battle.
	VictoryReward int32 `koanf:"victory_reward"`
	BossReward    int32 `koanf:"boss_reward"`

	// BossInterval schedules the mini-boss every Nth day.
	BossInterval int32 `koanf:"boss_interval"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RedisAddr is the persistence backend address. Empty means run with
	// in-memory repositories only.
	RedisAddr string `koanf:"redis_addr"`

	// MetricsAddr configures the Prometheus listen address, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`

	Balance Balance `koanf:"balance"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		RedisAddr:   "localhost:6379",
		MetricsAddr: ":9090",
		Balance: Balance{
			PlayerHealth:    20,
			PlayerStamina:   10,
			EnemyBaseHealth: 10,
			EnemyBaseAttack: 3,
			HealthGrowth:    1.25,
			AttackGrowth:    1.15,
			HandSize:        5,
			VictoryReward:   10,
			BossReward:      50,
			BossInterval:    3,
		},
	}
}
