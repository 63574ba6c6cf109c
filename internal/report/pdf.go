package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes a one-page statement: header, summary figures and a table
// of every period. Core PDF fonts lack the subscript two, so units read "CO2".
func WritePDF(w io.Writer, s Series) error {
	if len(s.Points) == 0 {
		return ErrNoData
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(s.title(), true)
	pdf.SetCreator("carbonhub", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr(s.title()))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	lines := []string{
		fmt.Sprintf("Data Type: %s", s.Kind),
		fmt.Sprintf("Generated: %s", s.Generated.Format(time.RFC3339)),
		fmt.Sprintf("Total: %.2f t CO2", s.Stats.Total),
		fmt.Sprintf("Average: %.2f t CO2", s.Stats.Average),
		fmt.Sprintf("Max: %.2f t CO2  Min: %.2f t CO2", s.Stats.Max, s.Stats.Min),
		fmt.Sprintf("Trend: %s", s.Trend.Description),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Period", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Label", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Emissions (t CO2)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, p := range s.Points {
		pdf.CellFormat(50, 6, tr(s.period(p)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, tr(p.Label), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%.2f", p.Value), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
