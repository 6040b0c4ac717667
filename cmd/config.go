package cmd

import (
	"fmt"

	"github.com/samzong/gsc/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage gsc configuration",
		Long:  `Manage gsc configuration: the push remote, the default commit type, and the suggestion settings.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Get()
			if err != nil {
				return err
			}

			fmt.Fprintf(outWriter(), "remote: %s\n", cfg.Remote)
			fmt.Fprintf(outWriter(), "default_type: %s\n", cfg.DefaultType)
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(outWriter(), "types:")
			for _, row := range catalog.Rows() {
				fmt.Fprintf(outWriter(), "  %s\n", row)
			}
			fmt.Fprintf(outWriter(), "suggest.model: %s\n", cfg.Suggest.Model)
			if cfg.Suggest.APIKey != "" {
				fmt.Fprintln(outWriter(), "suggest.api_key: (set)")
			}
			return nil
		},
	}

	configSetCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a configuration value",
		Long: `Set a configuration value and persist it.

Supported keys: remote, default_type, suggest.model, suggest.api_key, suggest.api_base`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validateConfigKey(key, value); err != nil {
				return err
			}

			viper.Set(key, value)
			if err := config.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintf(outWriter(), "Set %s\n", key)
			return nil
		},
	}
)

var settableKeys = map[string]struct{}{
	"remote":           {},
	"default_type":     {},
	"suggest.model":    {},
	"suggest.api_key":  {},
	"suggest.api_base": {},
}

func validateConfigKey(key, value string) error {
	if _, ok := settableKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	if value == "" {
		return fmt.Errorf("value for %q cannot be empty", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
