package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/carbonhub-app/carbonhub/internal/config"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputCSV   = "csv"
)

const tabPadding = 2

// resolveOutput picks the --output value, falling back to the configured
// default when that default is one of allowed, else to table.
func resolveOutput(flag string, allowed ...string) (string, error) {
	if flag != "" {
		f := strings.ToLower(flag)
		if !slices.Contains(allowed, f) {
			return "", usageErrorf("unsupported output format %q (use %s)", flag, strings.Join(allowed, ", "))
		}
		return f, nil
	}
	if def := config.GetGlobalConfig().Output.DefaultFormat; slices.Contains(allowed, def) {
		return def, nil
	}
	return outputTable, nil
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

// parsePeriod parses a period argument, reporting a UsageError.
func parsePeriod(arg string) (emissions.PeriodKind, error) {
	kind, err := emissions.ParsePeriodKind(arg)
	if err != nil {
		return "", &UsageError{Err: fmt.Errorf("%w (use annual, monthly or daily)", err)}
	}
	return kind, nil
}

// precision returns the configured number of decimals for values.
func precision() int {
	return config.GetGlobalConfig().Output.Precision
}
