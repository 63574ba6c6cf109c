package report

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

func sampleSeries(t *testing.T) Series {
	t.Helper()
	points := emissions.Normalize(emissions.PeriodAnnual, []emissions.Record{
		emissions.AnnualRecord(2021, 100),
		emissions.AnnualRecord(2022, 120),
		emissions.AnnualRecord(2023, 150),
		emissions.AnnualRecord(2024, 170),
	})
	return NewSeries("Acme Steel", emissions.PeriodAnnual, points, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
}

func TestNewSeries(t *testing.T) {
	s := sampleSeries(t)
	assert.Equal(t, 4, s.Stats.Count)
	assert.InDelta(t, 540.0, s.Stats.Total, 1e-9)
	assert.Equal(t, emissions.TrendIncreasing, s.Trend.Trend)
	assert.Equal(t, "Acme Steel - Annual emissions", s.title())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleSeries(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{summarySheet, dataSheet}, f.GetSheetList())

	company, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Acme Steel", company)

	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Period", "Label", "Emissions (tons CO₂)"}, rows[0])
	assert.Equal(t, []string{"2021", "2021", "100"}, rows[1])
	assert.Equal(t, "2024", rows[4][0])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleSeries(t)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteChartPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChartPNG(&buf, sampleSeries(t), 480, 270))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 270, img.Bounds().Dy())
}

func TestEmptySeries(t *testing.T) {
	empty := NewSeries("Nobody", emissions.PeriodDaily, nil, time.Now())
	var buf bytes.Buffer

	require.ErrorIs(t, WriteXLSX(&buf, empty), ErrNoData)
	require.ErrorIs(t, WritePDF(&buf, empty), ErrNoData)
	require.ErrorIs(t, WriteChartPNG(&buf, empty, 0, 0), ErrNoData)
	assert.Zero(t, buf.Len())
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "acme-steel_monthly_20240601-080000.xlsx",
		FileName("Acme Steel", emissions.PeriodMonthly, FormatXLSX, now))
	assert.Equal(t, "pt-borneo-power_annual_20240601-080000.csv",
		FileName("  PT. Borneo / Power!! ", emissions.PeriodAnnual, FormatCSV, now))
	assert.Equal(t, "company_daily_20240601-080000.png",
		FileName("***", emissions.PeriodDaily, FormatPNG, now))
}
