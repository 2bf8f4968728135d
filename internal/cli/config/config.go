// Package config loads pygen's configuration from pygen.yaml and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the pygen configuration. Precedence is CLI flags, then
// PYGEN_* environment variables, then the config file, then defaults.
type Config struct {
	Author       string `mapstructure:"author"`
	TemplatesDir string `mapstructure:"templates_dir"`
	OutputDir    string `mapstructure:"output_dir"`
}

// DefaultAuthor is written into scaffolds when no author is configured.
const DefaultAuthor = "Developer"

// DefaultTemplatesDir returns the per-user template store location.
func DefaultTemplatesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".pygen", "templates")
	}
	return filepath.Join(home, ".pygen", "templates")
}

// Load reads configuration from pygen.yaml (or pygen.yml) in the current
// directory or $HOME/.config/pygen. A missing config file is not an error;
// defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("author", DefaultAuthor)
	v.SetDefault("templates_dir", DefaultTemplatesDir())
	v.SetDefault("output_dir", ".")

	v.SetConfigName("pygen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pygen"))
	}

	v.SetEnvPrefix("PYGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file - defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
