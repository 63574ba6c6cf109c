package emissions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats integers with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatEmissionValue abbreviates a tonne value by magnitude: "1.5M", "12.3K"
// or "950.0", followed by " t CO₂" when includeUnit is set. NaN formats as zero.
func FormatEmissionValue(value float64, includeUnit bool) string {
	if math.IsNaN(value) {
		value = 0
	}

	var formatted string
	switch {
	case value >= millionThreshold:
		formatted = fmt.Sprintf("%.1fM", value/millionThreshold)
	case value >= thousandThreshold:
		formatted = fmt.Sprintf("%.1fK", value/thousandThreshold)
	default:
		formatted = fmt.Sprintf("%.1f", value)
	}

	if includeUnit {
		return formatted + " " + UnitSuffix
	}
	return formatted
}

// FormatNumber formats an integer with thousand separators ("18,248").
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatDecimal formats v with the given precision and thousand separators
// ("1,234.57"). Precision zero rounds to an integer.
func FormatDecimal(v float64, precision int) string {
	rounded := Round(v, precision)
	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	s := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + frac
}

// FormatTonnes renders a company total for list cards ("12,345.6 t").
func FormatTonnes(v float64) string {
	if v == math.Trunc(v) {
		return FormatNumber(int64(v)) + " t"
	}
	return FormatDecimal(v, 1) + " t"
}
