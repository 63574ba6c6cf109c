package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and value ranges.

A file that cannot be parsed is reported as an error; each out-of-range value is
listed by its dotted key.`,
		Example: `  # Validate current configuration
  carbonhub config validate

  # Validate and show the effective values
  carbonhub config validate --verbose`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate loads the file strictly, then validates the effective values.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.Default()
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	cfg.SetConfigPath(config.FilePath(dir))
	if err = cfg.Load(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	cfg.ApplyEnvOverrides()

	if err = cfg.Validate(); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			cmd.PrintErrln("Configuration is invalid:")
			keys := make([]string, 0, len(verr.Fields))
			for k := range verr.Fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				cmd.PrintErrf("  %s: %s\n", k, verr.Fields[k])
			}
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints every effective key and the file location.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Printf("\nConfiguration file: %s\n", cfg.ConfigPath())
	values := cfg.List()
	for _, k := range config.Keys() {
		cmd.Printf("  %s = %s\n", k, values[k])
	}
}
