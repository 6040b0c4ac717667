// Package config loads gsc settings through viper. A global config lives at
// ~/.gsc.yaml; a repo-local .gsc.yaml overrides it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samzong/gsc/internal/committype"
	"github.com/spf13/viper"
)

// Config holds the application settings.
type Config struct {
	Remote      string            `mapstructure:"remote"`
	DefaultType string            `mapstructure:"default_type"`
	Types       []committype.Type `mapstructure:"types"`
	Suggest     SuggestConfig     `mapstructure:"suggest"`
}

// SuggestConfig configures the optional LLM subject suggestion.
type SuggestConfig struct {
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
	APIBase string `mapstructure:"api_base"`
}

const (
	DefaultRemote     = "origin"
	DefaultType       = "feat"
	DefaultModel      = "gpt-4o-mini"
	DefaultConfigName = ".gsc"
)

// Init wires defaults and reads the config file. A missing file is not an
// error; a malformed one is.
func Init(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		// Repo-local config wins over the one in $HOME.
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(DefaultConfigName)
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("remote", DefaultRemote)
	viper.SetDefault("default_type", DefaultType)
	viper.SetDefault("suggest.model", DefaultModel)
	viper.SetDefault("suggest.api_key", "")
	viper.SetDefault("suggest.api_base", "")

	viper.SetEnvPrefix("GSC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Get unmarshals the current viper state into a Config.
func Get() (*Config, error) {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Catalog returns the commit type catalog for this run: the configured
// per-project table when present, the default catalog otherwise.
func (c *Config) Catalog() (committype.Catalog, error) {
	if len(c.Types) == 0 {
		return committype.Default(), nil
	}
	catalog, err := committype.New(c.Types)
	if err != nil {
		return committype.Catalog{}, fmt.Errorf("invalid types in config: %w", err)
	}
	return catalog, nil
}

// Save writes the current viper state back to the config file, creating
// ~/.gsc.yaml when no file was loaded.
func Save() error {
	if viper.ConfigFileUsed() != "" {
		return viper.WriteConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}
	return viper.WriteConfigAs(filepath.Join(home, DefaultConfigName+".yaml"))
}
