// Package config loads simulator configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Deck       DeckConfig       `mapstructure:"deck"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

// SimulationConfig controls batch execution.
type SimulationConfig struct {
	Runs    int    `mapstructure:"runs"`
	Seed    uint32 `mapstructure:"seed"`
	Workers int    `mapstructure:"workers"`
}

// DeckConfig points at the card database and deck list.
type DeckConfig struct {
	Registry string `mapstructure:"registry"`
	List     string `mapstructure:"list"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig controls optional batch-result persistence.
type DatabaseConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
}

// Load reads the configuration file at path. Environment variables
// prefixed GOLDFISH_ override file values (GOLDFISH_SIMULATION_RUNS,
// GOLDFISH_DATABASE_URL, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("simulation.runs", 10000)
	v.SetDefault("simulation.seed", 1)
	v.SetDefault("simulation.workers", 0)
	v.SetDefault("deck.registry", "data/cards.json")
	v.SetDefault("deck.list", "data/deck.txt")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.enabled", false)

	v.SetEnvPrefix("GOLDFISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Simulation.Runs <= 0 {
		return nil, fmt.Errorf("simulation.runs must be positive")
	}
	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url required when database.enabled")
	}

	return &cfg, nil
}
