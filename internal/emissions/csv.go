package emissions

import (
	"strconv"
	"strings"
	"time"
)

// generatedLayout is an ISO-8601 UTC timestamp with milliseconds.
const generatedLayout = "2006-01-02T15:04:05.000Z"

// ExportCSV serializes normalized points with company metadata:
//
//	Company: <name>
//	Data Type: <type>
//	Generated: <timestamp>
//
//	Period,Emissions (tons CO₂)
//	<period>,<value>
//
// The period column is the point's SortKey, or its Label when the key is
// empty. Fields are written verbatim: commas or newlines in the company name
// or periods are not quoted. An empty series returns NoDataExport.
func ExportCSV(points []ChartPoint, companyName, dataType string, now time.Time) string {
	if len(points) == 0 {
		return NoDataExport
	}

	rows := make([][2]string, len(points))
	for i, p := range points {
		period := p.SortKey
		if period == "" {
			period = p.Label
		}
		rows[i] = [2]string{period, formatCSVNumber(p.Value)}
	}
	return buildCSV(rows, companyName, dataType, now)
}

// ExportRecordsCSV serializes raw records. The period column is the year,
// month or date of the record, and the value follows Record.Resolved.
func ExportRecordsCSV(records []Record, companyName, dataType string, now time.Time) string {
	if len(records) == 0 {
		return NoDataExport
	}

	rows := make([][2]string, len(records))
	for i, r := range records {
		rows[i] = [2]string{r.Period(), formatCSVNumber(r.Resolved())}
	}
	return buildCSV(rows, companyName, dataType, now)
}

func buildCSV(rows [][2]string, companyName, dataType string, now time.Time) string {
	lines := make([]string, 0, len(rows)+5) //nolint:mnd // metadata lines
	lines = append(lines,
		"Company: "+companyName,
		"Data Type: "+dataType,
		"Generated: "+now.UTC().Format(generatedLayout),
		"",
		CSVHeader,
	)
	for _, row := range rows {
		lines = append(lines, row[0]+","+row[1])
	}
	return strings.Join(lines, "\n")
}

// formatCSVNumber writes the shortest decimal representation ("1.5", "2").
func formatCSVNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
