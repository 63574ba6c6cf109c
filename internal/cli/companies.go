package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/api"
	"github.com/carbonhub-app/carbonhub/internal/cli/pagination"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// companiesOutput is the JSON document of `companies --output json`.
type companiesOutput struct {
	Companies  []api.Company              `json:"companies"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty"`
}

// NewCompaniesCmd creates the companies command listing every company.
func NewCompaniesCmd() *cobra.Command {
	var (
		sortExpr string
		output   string
		params   pagination.PaginationParams
	)

	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List companies reporting emissions",
		Long: `Lists the companies known to CarbonHub with their annual emissions preview.

Results can be sorted by name, emissions, industry, location or id, and paged
either by --limit/--offset or by --page/--page-size.`,
		Example: `  # Ten largest emitters
  carbonhub companies --sort emissions:desc --limit 10

  # Second page of 20, as JSON
  carbonhub companies --page 2 --page-size 20 --output json`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompanies(cmd, sortExpr, output, params)
		},
	}

	cmd.Flags().StringVar(&sortExpr, "sort", "name", "sort field and order: name|emissions|industry|location|id[:asc|desc]")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum number of companies (0 = all)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of companies to skip")
	cmd.Flags().IntVar(&params.Page, "page", 0, "1-based page number (requires --page-size)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", 0, "companies per page")

	return cmd
}

func runCompanies(cmd *cobra.Command, sortExpr, output string, params pagination.PaginationParams) error {
	format, err := resolveOutput(output, outputTable, outputJSON)
	if err != nil {
		return err
	}
	if err = params.Validate(); err != nil {
		return &UsageError{Err: err}
	}
	field, order, err := pagination.ParseSort(sortExpr)
	if err != nil {
		return &UsageError{Err: err}
	}
	if field == "" {
		field = pagination.SortFieldName
	}
	sorter := pagination.NewCompanySorter()
	if !sorter.IsValidField(field) {
		return usageErrorf("%w: %q (valid: %s)", pagination.ErrInvalidSortField, field,
			strings.Join(sorter.GetValidFields(), ", "))
	}

	companies, err := newClient(cmd).Companies(cmd.Context())
	if err != nil {
		return err
	}
	sorted, err := sorter.Sort(companies, field, order)
	if err != nil {
		return err
	}
	page := pagination.Apply(params, sorted)

	if format == outputJSON {
		out := companiesOutput{Companies: page}
		if params.IsEnabled() {
			meta := pagination.NewPaginationMeta(params, len(sorted))
			out.Pagination = &meta
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	if len(page) == 0 {
		cmd.Println("No companies found.")
		return nil
	}

	w := newTabWriter(cmd.OutOrStdout())
	fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tLOCATION\tANNUAL EMISSIONS")
	for _, c := range page {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, dash(c.Industry), dash(c.Location),
			emissions.FormatTonnes(c.AnnualEmissions))
	}
	if err = w.Flush(); err != nil {
		return err
	}
	if params.IsEnabled() && len(page) < len(sorted) {
		meta := pagination.NewPaginationMeta(params, len(sorted))
		cmd.Printf("\nShowing %d of %d companies (page %d of %d)\n",
			len(page), len(sorted), meta.CurrentPage, meta.TotalPages)
	}
	return nil
}

// NewCompanyCmd creates the company command showing one company.
func NewCompanyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "company <id>",
		Short: "Show a company and its annual emissions",
		Example: `  carbonhub company 42
  carbonhub company 42 --output json`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompany(cmd, args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}

func runCompany(cmd *cobra.Command, id, output string) error {
	format, err := resolveOutput(output, outputTable, outputJSON)
	if err != nil {
		return err
	}

	detail, err := newClient(cmd).CompanyDetail(cmd.Context(), id)
	if err != nil {
		return err
	}
	if format == outputJSON {
		return writeJSON(cmd.OutOrStdout(), detail)
	}

	points := emissions.Normalize(emissions.PeriodAnnual, detail.Annual)
	stats := emissions.SummarizePoints(points)
	trend := emissions.AnalyzePointsTrend(points)
	level := emissions.LevelFor(detail.AnnualEmissions)

	out := cmd.OutOrStdout()
	w := newTabWriter(out)
	fmt.Fprintf(w, "Company:\t%s (id %s)\n", detail.Name, detail.ID)
	fmt.Fprintf(w, "Industry:\t%s\n", dash(detail.Industry))
	fmt.Fprintf(w, "Location:\t%s\n", dash(detail.Location))
	fmt.Fprintf(w, "Annual emissions:\t%s (%s)\n", emissions.FormatTonnes(detail.AnnualEmissions), level)
	fmt.Fprintf(w, "Reported years:\t%d\n", stats.Count)
	fmt.Fprintf(w, "Trend:\t%s %s\n", trend.Direction.Arrow(), trend.Description)
	if eq := emissions.Equivalency(detail.AnnualEmissions); !eq.IsEmpty {
		fmt.Fprintf(w, "Impact:\t%s\n", eq.DisplayText)
	}
	if err = w.Flush(); err != nil {
		return err
	}

	if len(points) > 0 {
		fmt.Fprintln(out)
		return writePointsTable(out, points)
	}
	return nil
}

// lookupCompany resolves a company id to its list entry.
func lookupCompany(ctx context.Context, client *api.Client, id string) (api.Company, error) {
	companies, err := client.Companies(ctx)
	if err != nil {
		return api.Company{}, err
	}
	want := strings.TrimSpace(id)
	for _, c := range companies {
		if c.ID == want {
			return c, nil
		}
	}
	return api.Company{}, fmt.Errorf("%w: id %s", api.ErrCompanyNotFound, id)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
