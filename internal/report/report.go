// Package report renders an emission series as XLSX, PDF or PNG files.
package report

import (
	"errors"
	"time"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

// ErrNoData is returned when a series has no points to render.
var ErrNoData = errors.New("no data available for export")

// Format names an export format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatCSV, FormatXLSX, FormatPDF, FormatPNG}
}

// Series is one company's normalized series with its derived figures.
type Series struct {
	Company   string
	Kind      emissions.PeriodKind
	Points    []emissions.ChartPoint
	Stats     emissions.SummaryStatistics
	Trend     emissions.TrendAnalysis
	Generated time.Time
}

// NewSeries derives statistics and trend from points.
func NewSeries(company string, kind emissions.PeriodKind, points []emissions.ChartPoint, now time.Time) Series {
	return Series{
		Company:   company,
		Kind:      kind,
		Points:    points,
		Stats:     emissions.SummarizePoints(points),
		Trend:     emissions.AnalyzePointsTrend(points),
		Generated: now.UTC(),
	}
}

func (s Series) title() string {
	return s.Company + " - " + s.Kind.Title() + " emissions"
}

func (s Series) period(p emissions.ChartPoint) string {
	if p.SortKey != "" {
		return p.SortKey
	}
	return p.Label
}
