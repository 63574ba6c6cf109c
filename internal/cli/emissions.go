package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// seriesOutput is the JSON document of `emissions --output json`.
type seriesOutput struct {
	CompanyID string                 `json:"company_id"`
	Company   string                 `json:"company"`
	Period    emissions.PeriodKind   `json:"period"`
	Points    []emissions.ChartPoint `json:"points"`
}

// statsOutput is the JSON document of `stats --output json`.
type statsOutput struct {
	CompanyID  string                      `json:"company_id"`
	Company    string                      `json:"company"`
	Period     emissions.PeriodKind        `json:"period"`
	Statistics emissions.SummaryStatistics `json:"statistics"`
	Trend      emissions.TrendAnalysis     `json:"trend"`
}

// NewEmissionsCmd creates the emissions command printing one series.
func NewEmissionsCmd() *cobra.Command {
	var (
		output string
		last   int
	)

	cmd := &cobra.Command{
		Use:   "emissions <annual|monthly|daily> <company-id>",
		Short: "Show the emissions series of a company",
		Long: `Prints a company's annual, monthly or daily emissions in period order.

Annual entries are labeled by year, monthly ones as "Jan 24" and daily ones as
"Mar 5". CSV output carries the company, data type and generation time.`,
		Example: `  carbonhub emissions annual 42
  carbonhub emissions daily 42 --last 30
  carbonhub emissions monthly 42 --output csv > acme.csv`,
		Args: exactArgs(2), //nolint:mnd // period and company id
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmissions(cmd, args[0], args[1], output, last)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or csv")
	cmd.Flags().IntVar(&last, "last", 0, "only show the latest N periods (0 = all)")
	return cmd
}

func runEmissions(cmd *cobra.Command, periodArg, id, output string, last int) error {
	kind, err := parsePeriod(periodArg)
	if err != nil {
		return err
	}
	format, err := resolveOutput(output, outputTable, outputJSON, outputCSV)
	if err != nil {
		return err
	}
	if last < 0 {
		return usageErrorf("--last must be >= 0, got %d", last)
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
	if last > 0 {
		points = emissions.Window(points, last)
	}

	out := cmd.OutOrStdout()
	switch format {
	case outputJSON:
		return writeJSON(out, seriesOutput{CompanyID: company.ID, Company: company.Name, Period: kind, Points: points})
	case outputCSV:
		_, err = fmt.Fprintln(out, emissions.ExportCSV(points, company.Name, kind.String(), time.Now()))
		return err
	}

	fmt.Fprintf(out, "%s - %s emissions\n\n", company.Name, kind.Title())
	if len(points) == 0 {
		fmt.Fprintln(out, "No emissions data available.")
		return nil
	}
	return writePointsTable(out, points)
}

// writePointsTable prints points as a PERIOD/LABEL/EMISSIONS table.
func writePointsTable(out io.Writer, points []emissions.ChartPoint) error {
	decimals := precision()
	w := newTabWriter(out)
	fmt.Fprintln(w, "PERIOD\tLABEL\tEMISSIONS (t CO₂)")
	for _, p := range points {
		period := p.SortKey
		if period == "" {
			period = p.Label
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", period, p.Label, emissions.FormatDecimal(p.Value, decimals))
	}
	return w.Flush()
}

// NewStatsCmd creates the stats command summarizing one series.
func NewStatsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stats <annual|monthly|daily> <company-id>",
		Short: "Summarize a series: total, average, extremes and trend",
		Example: `  carbonhub stats annual 42
  carbonhub stats monthly 42 --output json`,
		Args: exactArgs(2), //nolint:mnd // period and company id
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args[0], args[1], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}

func runStats(cmd *cobra.Command, periodArg, id, output string) error {
	kind, err := parsePeriod(periodArg)
	if err != nil {
		return err
	}
	format, err := resolveOutput(output, outputTable, outputJSON)
	if err != nil {
		return err
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
	stats := emissions.SummarizePoints(points)
	trend := emissions.AnalyzePointsTrend(points)

	out := cmd.OutOrStdout()
	if format == outputJSON {
		return writeJSON(out, statsOutput{
			CompanyID: company.ID, Company: company.Name, Period: kind, Statistics: stats, Trend: trend,
		})
	}

	decimals := precision()
	tonnes := func(v float64) string { return emissions.FormatDecimal(v, decimals) + " " + emissions.UnitSuffix }

	fmt.Fprintf(out, "%s - %s emissions\n\n", company.Name, kind.Title())
	w := newTabWriter(out)
	fmt.Fprintf(w, "Periods:\t%d\n", stats.Count)
	fmt.Fprintf(w, "Total:\t%s\n", tonnes(stats.Total))
	fmt.Fprintf(w, "Average:\t%s\n", tonnes(stats.Average))
	fmt.Fprintf(w, "Max:\t%s\n", tonnes(stats.Max))
	fmt.Fprintf(w, "Min:\t%s\n", tonnes(stats.Min))
	fmt.Fprintf(w, "Trend:\t%s %s\n", trend.Direction.Arrow(), trend.Description)
	return w.Flush()
}
