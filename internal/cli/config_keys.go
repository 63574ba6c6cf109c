package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/config"
)

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <key>",
		Short:   "Print one configuration value",
		Example: `  carbonhub config get api.base_url`,
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return keyError(err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value and save the file",
		Example: `  carbonhub config set output.default_format json
  carbonhub config set cache.ttl_seconds 7200`,
		Args: exactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetGlobalConfig()
			if err := cfg.Set(args[0], args[1]); err != nil {
				return keyError(err)
			}
			if err := config.EnsureConfigDir(); err != nil {
				return fmt.Errorf("failed to create configuration directory: %w", err)
			}
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutput(output, outputTable, outputJSON)
			if err != nil {
				return err
			}
			values := config.GetGlobalConfig().List()
			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), values)
			}

			w := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(w, "KEY\tVALUE")
			for _, k := range config.Keys() {
				fmt.Fprintf(w, "%s\t%s\n", k, values[k])
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}

// keyError turns unknown keys and rejected values into usage errors.
func keyError(err error) error {
	if errors.Is(err, config.ErrUnknownKey) || errors.Is(err, config.ErrInvalidValue) {
		return &UsageError{Err: err}
	}
	return err
}
