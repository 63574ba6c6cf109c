package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	dataSheet    = "Data"
)

// WriteXLSX writes a workbook with a summary sheet and a data sheet.
func WriteXLSX(w io.Writer, s Series) error {
	if len(s.Points) == 0 {
		return ErrNoData
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(dataSheet); err != nil {
		return fmt.Errorf("creating data sheet: %w", err)
	}

	summary := [][2]any{
		{"Company", s.Company},
		{"Data Type", s.Kind.String()},
		{"Generated", s.Generated.Format(time.RFC3339)},
		{"Total (t CO₂)", s.Stats.Total},
		{"Average (t CO₂)", s.Stats.Average},
		{"Max (t CO₂)", s.Stats.Max},
		{"Min (t CO₂)", s.Stats.Min},
		{"Periods", s.Stats.Count},
		{"Trend", s.Trend.Description},
	}
	_ = f.SetCellValue(summarySheet, "A1", s.title())
	for i, row := range summary {
		r := i + 3
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", r), row[0])
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", r), row[1])
	}

	_ = f.SetCellValue(dataSheet, "A1", "Period")
	_ = f.SetCellValue(dataSheet, "B1", "Label")
	_ = f.SetCellValue(dataSheet, "C1", "Emissions (tons CO₂)")
	for i, p := range s.Points {
		r := i + 2
		_ = f.SetCellValue(dataSheet, fmt.Sprintf("A%d", r), s.period(p))
		_ = f.SetCellValue(dataSheet, fmt.Sprintf("B%d", r), p.Label)
		_ = f.SetCellValue(dataSheet, fmt.Sprintf("C%d", r), p.Value)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 20)
	_ = f.SetColWidth(dataSheet, "A", "C", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
