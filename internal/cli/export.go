package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/config"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
	"github.com/carbonhub-app/carbonhub/internal/report"
)

// Default PNG chart size in pixels.
const (
	defaultChartWidth  = 960
	defaultChartHeight = 540
)

type exportFlags struct {
	format string
	file   string
	width  int
	height int
}

// NewExportCmd creates the export command writing a series to a file.
func NewExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export <annual|monthly|daily> <company-id>",
		Short: "Export a series as CSV, Excel, PDF or a PNG chart",
		Long: `Writes a company's series to a file. Without --file the file is created in the
configured export directory (output.export_dir, default the working directory)
with a name such as acme-steel_monthly_20240601-080000.xlsx. Use --file - to
write to stdout.`,
		Example: `  carbonhub export annual 42 --format csv
  carbonhub export monthly 42 --format xlsx --file report.xlsx
  carbonhub export daily 42 --format png --width 1280 --height 720`,
		Args: exactArgs(2), //nolint:mnd // period and company id
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", string(report.FormatCSV), "export format: csv, xlsx, pdf or png")
	cmd.Flags().StringVar(&flags.file, "file", "", "output path (default: generated name in the export directory)")
	cmd.Flags().IntVar(&flags.width, "width", defaultChartWidth, "PNG chart width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", defaultChartHeight, "PNG chart height in pixels")
	return cmd
}

func runExport(cmd *cobra.Command, periodArg, id string, flags exportFlags) error {
	kind, err := parsePeriod(periodArg)
	if err != nil {
		return err
	}
	format := report.Format(strings.ToLower(flags.format))
	if !slices.Contains(report.Formats(), format) {
		return usageErrorf("unsupported export format %q (use csv, xlsx, pdf or png)", flags.format)
	}
	if flags.width <= 0 || flags.height <= 0 {
		return usageErrorf("--width and --height must be positive")
	}

	ctx := cmd.Context()
	client := newClient(cmd)
	company, err := lookupCompany(ctx, client, id)
	if err != nil {
		return err
	}
	records, err := client.Emissions(ctx, kind, company.ID)
	if err != nil {
		return err
	}

	points := emissions.Normalize(kind, records)
	if len(points) == 0 {
		return fmt.Errorf("%s emissions for %s: %w", kind, company.Name, report.ErrNoData)
	}
	now := time.Now()
	series := report.NewSeries(company.Name, kind, points, now)

	if flags.file == "-" {
		return writeReport(cmd.OutOrStdout(), format, series, flags)
	}

	path := flags.file
	if path == "" {
		dir := config.GetGlobalConfig().GetExportDir()
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
		path = filepath.Join(dir, report.FileName(company.Name, kind, format, now))
	}

	f, err := os.Create(path) //nolint:gosec // user-chosen output path
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err = writeReport(f, format, series, flags); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	logger.Info().Ctx(ctx).Str("path", path).Str("format", string(format)).Int("points", len(points)).Msg("export written")
	cmd.Printf("Exported %d %s periods of %s to %s\n", len(points), kind, company.Name, path)
	return nil
}

func writeReport(w io.Writer, format report.Format, s report.Series, flags exportFlags) error {
	switch format {
	case report.FormatXLSX:
		return report.WriteXLSX(w, s)
	case report.FormatPDF:
		return report.WritePDF(w, s)
	case report.FormatPNG:
		return report.WriteChartPNG(w, s, flags.width, flags.height)
	default:
		_, err := io.WriteString(w, emissions.ExportCSV(s.Points, s.Company, s.Kind.String(), s.Generated))
		return err
	}
}
