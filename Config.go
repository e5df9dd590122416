package main

import (
	"fmt"
	"log/slog"
	"miniSheet/contracts"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultListenAddr = ":8080"

type GridConfig struct {
	Columns []string `toml:"columns"`
	Rows    int      `toml:"rows"`
}

type Config struct {
	ListenAddr     string      `toml:"listen_addr"`
	DatabasePath   string      `toml:"database_path"`
	LogLevel       string      `toml:"log_level"`
	CyclePolicy    CyclePolicy `toml:"cycle_policy"`
	WebhookWorkers int         `toml:"webhook_workers"`
	Grid           GridConfig  `toml:"grid"`
}

func DefaultConfig() Config {
	return Config{
		ListenAddr:     DefaultListenAddr,
		LogLevel:       "info",
		CyclePolicy:    CyclePolicyError,
		WebhookWorkers: DefaultWebhookWorkersCount,
		Grid: GridConfig{
			Columns: append([]string{}, DefaultColumns...),
			Rows:    DefaultRows,
		},
	}
}

// LoadConfig layers defaults, the optional toml file and the environment, in that order
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return config, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	if value, ok := os.LookupEnv("DATABASE_FILEPATH"); ok && value != "" {
		config.DatabasePath = value
	}
	if value, ok := os.LookupEnv("LISTEN_ADDR"); ok && value != "" {
		config.ListenAddr = value
	}
	if value, ok := os.LookupEnv("LOG_LEVEL"); ok && value != "" {
		config.LogLevel = value
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr is empty", contracts.InvalidConfigError)
	}

	if !c.CyclePolicy.IsValid() {
		return fmt.Errorf("%w: cycle_policy should be `%s` or `%s`, got `%s`",
			contracts.InvalidConfigError, CyclePolicyError, CyclePolicySinglePass, c.CyclePolicy)
	}

	if c.WebhookWorkers < 1 {
		return fmt.Errorf("%w: webhook_workers should be positive, got %d", contracts.InvalidConfigError, c.WebhookWorkers)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level: %s", contracts.InvalidConfigError, err)
	}

	if err := ValidateGrid(c.Grid.Columns, c.Grid.Rows); err != nil {
		return fmt.Errorf("%w: %w", contracts.InvalidConfigError, err)
	}

	return nil
}
