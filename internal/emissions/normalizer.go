package emissions

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Layouts of the period identifiers sent by the API and of their labels.
const (
	monthLayout      = "2006-01"
	dateLayout       = "2006-01-02"
	monthLabelLayout = "Jan 06"
	dayLabelLayout   = "Jan 2"
)

// Normalize converts raw records of the given kind into chart points sorted
// chronologically. Annual series sort numerically by year (records without a
// year first); monthly and daily series sort by their ISO period string.
// The sort is stable, so duplicate periods keep their input order.
//
// Unknown kinds are normalized as annual. Empty input yields an empty slice.
func Normalize(kind PeriodKind, records []Record) []ChartPoint {
	switch kind {
	case PeriodMonthly:
		return normalizeISO(records, func(r Record) string { return r.Month }, monthLabel)
	case PeriodDaily:
		return normalizeISO(records, func(r Record) string { return r.Date }, dayLabel)
	default:
		return normalizeAnnual(records)
	}
}

func normalizeAnnual(records []Record) []ChartPoint {
	type keyed struct {
		point   ChartPoint
		year    int
		hasYear bool
	}

	items := make([]keyed, 0, len(records))
	for _, r := range records {
		k := keyed{point: newPoint(r, "", "")}
		if r.Year != nil {
			k.year = *r.Year
			k.hasYear = true
			k.point.Label = strconv.Itoa(*r.Year)
			k.point.SortKey = k.point.Label
		}
		items = append(items, k)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].hasYear != items[j].hasYear {
			return !items[i].hasYear
		}
		return items[i].year < items[j].year
	})

	points := make([]ChartPoint, len(items))
	for i, k := range items {
		points[i] = k.point
	}
	return points
}

func normalizeISO(records []Record, period func(Record) string, label func(string) string) []ChartPoint {
	points := make([]ChartPoint, 0, len(records))
	for _, r := range records {
		key := period(r)
		points = append(points, newPoint(r, label(key), key))
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].SortKey < points[j].SortKey
	})
	return points
}

func newPoint(r Record, label, sortKey string) ChartPoint {
	value := r.Resolved()
	return ChartPoint{
		Label:     label,
		Value:     value,
		SortKey:   sortKey,
		TotalTon:  sanitize(r.TotalTon),
		Formatted: FormatPointValue(value),
	}
}

// monthLabel turns "2024-03" into "Mar 24". Unparseable input yields "".
func monthLabel(month string) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return ""
	}
	return t.Format(monthLabelLayout)
}

// dayLabel turns "2024-03-05" into "Mar 5". Unparseable input yields "".
func dayLabel(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format(dayLabelLayout)
}

// FormatPointValue renders a value the way ChartPoint.Formatted does ("12.3t CO₂").
func FormatPointValue(v float64) string {
	return fmt.Sprintf("%.1f%s", v, UnitSuffix)
}

// Window returns the last n points of a series. A non-positive n, or an n at
// least the series length, returns the series unchanged.
func Window(points []ChartPoint, n int) []ChartPoint {
	if n <= 0 || n >= len(points) {
		return points
	}
	return points[len(points)-n:]
}

// Values extracts the Value of each point.
func Values(points []ChartPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Value
	}
	return values
}
