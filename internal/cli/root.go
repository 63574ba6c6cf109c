package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carbonhub-app/carbonhub/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonhub CLI.
// It wires up logging, tracing and every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:           "carbonhub",
		Short:         "Browse and export company carbon emissions",
		Long:          "carbonhub: explore annual, monthly and daily CO₂ emissions reported by companies on CarbonHub",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateGlobalFlags(cmd); err != nil {
				return err
			}
			if err := applyConfigOverlay(cmd); err != nil {
				return err
			}
			logResult = setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file whose sections replace those of the config file")
	cmd.PersistentFlags().String("base-url", "", "API base URL (overrides config file and env var)")
	cmd.PersistentFlags().Bool("no-cache", false, "bypass the response cache")
	cmd.PersistentFlags().
		String("cache-ttl", "", "cache TTL in seconds or as a duration such as 30m (overrides config file and env var)")

	cmd.AddCommand(
		NewCompaniesCmd(), NewCompanyCmd(), NewEmissionsCmd(), NewStatsCmd(),
		NewExportCmd(), NewDashboardCmd(), newThemeCmd(), newConfigCmd(), newCacheCmd(),
	)

	return cmd
}

const rootCmdExample = `  # List companies, highest emitters first
  carbonhub companies --sort emissions:desc --limit 10

  # Show the monthly series of a company
  carbonhub emissions monthly 42

  # Summary statistics and trend as JSON
  carbonhub stats annual 42 --output json

  # Export a daily series to Excel
  carbonhub export daily 42 --format xlsx

  # Open the interactive dashboard
  carbonhub dashboard

  # Switch to the light theme
  carbonhub theme set light

  # Initialize configuration
  carbonhub config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}

// newThemeCmd creates the theme command group.
func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the dashboard theme",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemeGet(cmd)
		},
	}
	cmd.AddCommand(NewThemeGetCmd(), NewThemeSetCmd(), NewThemeToggleCmd())
	return cmd
}

// newCacheCmd creates the cache command group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Response cache commands"}
	cmd.AddCommand(NewCacheInfoCmd(), NewCacheClearCmd())
	return cmd
}
