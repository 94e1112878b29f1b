package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the few user-tunable settings. Every key has a default so the
// tool works with no config file present.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`  // where the database and flag files live
	Currency string `mapstructure:"currency"`  // suffix for rendered prices
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error
}

// Load reads ~/.tgeld/config.yaml (if present) with TGELD_* environment
// overrides on top.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".tgeld"))

	v.SetEnvPrefix("TGELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", filepath.Join(home, ".tgeld"))
	v.SetDefault("currency", "€")
	v.SetDefault("log_level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
