// Package emissions turns raw CarbonHub emission series into chart-ready data.
//
// It normalizes annual, monthly and daily records into sorted ChartPoints,
// reduces them to summary statistics, classifies the two-period trend and
// serializes a series to CSV. Every function here is pure: malformed input is
// replaced with zero values or empty labels, and no function returns an error
// for bad data.
package emissions

import (
	"fmt"
	"strings"
)

// PeriodKind identifies the time granularity of an emission series.
type PeriodKind string

const (
	// PeriodAnnual series carry a numeric year.
	PeriodAnnual PeriodKind = "annual"

	// PeriodMonthly series carry a "YYYY-MM" month.
	PeriodMonthly PeriodKind = "monthly"

	// PeriodDaily series carry a "YYYY-MM-DD" date.
	PeriodDaily PeriodKind = "daily"
)

// PeriodKinds lists the supported kinds in display order.
func PeriodKinds() []PeriodKind {
	return []PeriodKind{PeriodAnnual, PeriodMonthly, PeriodDaily}
}

// ParsePeriodKind parses a user-supplied period kind (case-insensitive).
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodAnnual:
		return PeriodAnnual, nil
	case PeriodMonthly:
		return PeriodMonthly, nil
	case PeriodDaily:
		return PeriodDaily, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
	}
}

// String returns the kind as used in API paths and CSV metadata.
func (k PeriodKind) String() string {
	return string(k)
}

// Title returns the capitalized kind for headers ("Annual").
func (k PeriodKind) Title() string {
	s := string(k)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ChartPoint is a normalized, display-ready emission value.
type ChartPoint struct {
	// Label is the short period label ("2023", "Jan 23", "Mar 5").
	Label string `json:"label"`

	// Value is the resolved emission value in tonnes CO₂.
	Value float64 `json:"value"`

	// SortKey is the raw period identifier used for ordering.
	SortKey string `json:"sortKey"`

	// TotalTon is the record's totalTon field after sanitizing.
	TotalTon float64 `json:"totalTon"`

	// Formatted is Value with one decimal and a "t CO₂" suffix.
	Formatted string `json:"formatted"`
}

// SummaryStatistics aggregates a series. Numeric fields are rounded to two decimals.
type SummaryStatistics struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Count   int     `json:"count"`
}

// Trend classifies the change between the two halves of a series.
type Trend string

const (
	TrendInsufficientData Trend = "insufficient_data"
	TrendStable           Trend = "stable"
	TrendIncreasing       Trend = "increasing"
	TrendDecreasing       Trend = "decreasing"
)

// Direction is the arrow shown next to a trend.
type Direction string

const (
	DirectionNeutral Direction = "neutral"
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
)

// TrendAnalysis is the result of AnalyzeTrend.
type TrendAnalysis struct {
	Trend           Trend     `json:"trend"`
	Direction       Direction `json:"direction"`
	Percentage      float64   `json:"percentage"`
	Description     string    `json:"description"`
	FirstPeriodAvg  float64   `json:"firstPeriodAvg"`
	SecondPeriodAvg float64   `json:"secondPeriodAvg"`
}
