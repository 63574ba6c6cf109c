package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.carbonhub/config.yaml (or $CARBONHUB_HOME/config.yaml) holding the
default values, ready to edit.`,
		Example: `  # Create configuration
  carbonhub config init

  # Create configuration, overwriting existing
  carbonhub config init --force`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	cfg := config.Default()
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	cfg.SetConfigPath(config.FilePath(dir))

	if !force {
		if _, statErr := os.Stat(cfg.ConfigPath()); statErr == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), statErr)
		}
	}

	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
