package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/config"
	"github.com/carbonhub-app/carbonhub/internal/prefs"
	"github.com/carbonhub-app/carbonhub/internal/theme"
)

// newThemeManager opens the preference file and falls back to the configured
// default theme.
func newThemeManager() (*theme.Manager, error) {
	path, err := config.GetPrefsPath()
	if err != nil {
		return nil, err
	}
	fallback, err := theme.Parse(config.GetGlobalConfig().Theme.Default)
	if err != nil {
		fallback = theme.Default
	}
	return theme.NewManager(prefs.NewFileStore(path), fallback), nil
}

// NewThemeGetCmd creates the theme get command.
func NewThemeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the active theme",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemeGet(cmd)
		},
	}
}

func runThemeGet(cmd *cobra.Command) error {
	m, err := newThemeManager()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Load(cmd.Context()))
	return err
}

// NewThemeSetCmd creates the theme set command.
func NewThemeSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Save the dashboard theme",
		Args:      exactArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return &UsageError{Err: err}
			}
			m, err := newThemeManager()
			if err != nil {
				return err
			}
			if err = m.Set(cmd.Context(), t); err != nil {
				return err
			}
			cmd.Printf("Theme set to %s\n", t)
			return nil
		},
	}
}

// NewThemeToggleCmd creates the theme toggle command.
func NewThemeToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the dark and light themes",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newThemeManager()
			if err != nil {
				return err
			}
			t, err := m.Toggle(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("Theme set to %s\n", t)
			return nil
		},
	}
}
