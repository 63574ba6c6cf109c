package emissions

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Annual(t *testing.T) {
	t.Run("reorders ascending by year", func(t *testing.T) {
		points := Normalize(PeriodAnnual, []Record{
			AnnualRecord(2021, 1.0),
			AnnualRecord(2020, 2.0),
		})

		require.Len(t, points, 2)
		assert.Equal(t, ChartPoint{
			Label: "2020", Value: 2.0, SortKey: "2020", TotalTon: 2.0, Formatted: "2.0t CO₂",
		}, points[0])
		assert.Equal(t, "2021", points[1].Label)
		assert.InDelta(t, 1.0, points[1].Value, 1e-9)
	})

	t.Run("sorts numerically not lexically", func(t *testing.T) {
		points := Normalize(PeriodAnnual, []Record{
			AnnualRecord(10000, 1), AnnualRecord(999, 1), AnnualRecord(2023, 1),
		})
		assert.Equal(t, []string{"999", "2023", "10000"}, labels(points))
	})

	t.Run("keeps records without a year first with empty label", func(t *testing.T) {
		points := Normalize(PeriodAnnual, []Record{
			AnnualRecord(2022, 3),
			{TotalTon: 4},
		})
		require.Len(t, points, 2)
		assert.Empty(t, points[0].Label)
		assert.Empty(t, points[0].SortKey)
		assert.InDelta(t, 4.0, points[0].Value, 1e-9)
		assert.Equal(t, "2022", points[1].Label)
	})

	t.Run("shuffled input comes out sorted", func(t *testing.T) {
		years := []int{2019, 2024, 2001, 2015, 2023, 2010, 2018}
		records := make([]Record, len(years))
		for i, y := range years {
			records[i] = AnnualRecord(y, float64(i))
		}
		points := Normalize(PeriodAnnual, records)
		assert.True(t, sort.SliceIsSorted(points, func(i, j int) bool {
			return points[i].SortKey < points[j].SortKey
		}))
	})
}

func TestNormalize_Monthly(t *testing.T) {
	points := Normalize(PeriodMonthly, []Record{
		MonthlyRecord("2024-03", 1.26),
		MonthlyRecord("2023-12", 0.5),
		MonthlyRecord("2024-13", 2),
		MonthlyRecord("garbage", 3),
	})

	require.Len(t, points, 4)
	assert.Equal(t, []string{"2023-12", "2024-03", "2024-13", "garbage"}, sortKeys(points))
	assert.Equal(t, []string{"Dec 23", "Mar 24", "", ""}, labels(points))
	assert.Equal(t, "1.3t CO₂", points[1].Formatted)
}

func TestNormalize_Daily(t *testing.T) {
	points := Normalize(PeriodDaily, []Record{
		DailyRecord("2024-03-15", 1),
		DailyRecord("2024-03-05", 2),
		DailyRecord("", 3),
	})

	require.Len(t, points, 3)
	assert.Equal(t, []string{"", "Mar 5", "Mar 15"}, labels(points))
	assert.Equal(t, []string{"", "2024-03-05", "2024-03-15"}, sortKeys(points))
}

func TestNormalize_Empty(t *testing.T) {
	for _, kind := range PeriodKinds() {
		points := Normalize(kind, nil)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	}
}

func TestNormalize_UnknownKindDefaultsToAnnual(t *testing.T) {
	points := Normalize(PeriodKind("weekly"), []Record{AnnualRecord(2001, 1), AnnualRecord(2000, 1)})
	assert.Equal(t, []string{"2000", "2001"}, labels(points))
}

func TestNormalize_Deterministic(t *testing.T) {
	records := []Record{MonthlyRecord("2024-02", 1), MonthlyRecord("2024-01", 2)}
	assert.Equal(t, Normalize(PeriodMonthly, records), Normalize(PeriodMonthly, records))
	assert.Equal(t, "2024-02", records[0].Month, "input must not be reordered")
}

func TestNormalize_ValuePrecedence(t *testing.T) {
	v := 9.0
	points := Normalize(PeriodAnnual, []Record{{Year: intPtr(2020), TotalTon: 1, Value: &v}})
	require.Len(t, points, 1)
	assert.InDelta(t, 9.0, points[0].Value, 1e-9)
	assert.InDelta(t, 1.0, points[0].TotalTon, 1e-9)
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	payload := `[
		{"year": "2021", "totalTon": "1.5"},
		{"year": 2020, "totalTon": null},
		{"year": 2019},
		{"month": "2024-01", "totalTon": "n/a"},
		{"date": "2024-01-02", "totalTon": -4},
		"not an object",
		{"year": 2018, "totalTon": 2, "value": 7}
	]`

	var records []Record
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 7)

	require.NotNil(t, records[0].Year)
	assert.Equal(t, 2021, *records[0].Year)
	assert.InDelta(t, 1.5, records[0].TotalTon, 1e-9)
	assert.Zero(t, records[1].TotalTon)
	assert.Zero(t, records[2].TotalTon)
	assert.Equal(t, "2024-01", records[3].Month)
	assert.Zero(t, records[3].TotalTon)
	assert.Zero(t, records[4].TotalTon, "negative values clamp to zero")
	assert.Equal(t, Record{}, records[5])
	require.NotNil(t, records[6].Value)
	assert.InDelta(t, 7.0, records[6].Resolved(), 1e-9)
}

func TestWindow(t *testing.T) {
	points := Normalize(PeriodAnnual, []Record{
		AnnualRecord(2020, 1), AnnualRecord(2021, 2), AnnualRecord(2022, 3),
	})

	assert.Equal(t, []string{"2021", "2022"}, labels(Window(points, 2)))
	assert.Len(t, Window(points, 0), 3)
	assert.Len(t, Window(points, 10), 3)
}

func TestParsePeriodKind(t *testing.T) {
	kind, err := ParsePeriodKind(" Monthly ")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonthly, kind)
	assert.Equal(t, "Monthly", kind.Title())

	_, err = ParsePeriodKind("weekly")
	require.ErrorIs(t, err, ErrUnknownPeriod)
}

func labels(points []ChartPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}

func sortKeys(points []ChartPoint) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.SortKey
	}
	return out
}

func intPtr(v int) *int { return &v }
