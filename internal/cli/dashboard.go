package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/config"
	"github.com/carbonhub-app/carbonhub/internal/tui"
)

// NewDashboardCmd creates the dashboard command starting the interactive TUI.
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive emissions dashboard",
		Long: `Opens a full-screen dashboard listing every company. Select a company to see
its annual, monthly and daily charts, statistics and trend.

Keys: / filter, s sort, enter open, tab or 1-3 switch period, e export CSV,
t toggle theme, esc back, q quit.`,
		Args: exactArgs(0),
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return ErrNotTerminal
	}

	ctx := cmd.Context()
	themes, err := newThemeManager()
	if err != nil {
		return err
	}

	return tui.Run(ctx, tui.Options{
		Source:    newClient(cmd),
		Themes:    themes,
		Theme:     themes.Load(ctx),
		ExportDir: config.GetGlobalConfig().GetExportDir(),
	})
}
