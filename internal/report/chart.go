package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default PNG chart size in pixels at 96 DPI.
const (
	DefaultChartWidth  = 960
	DefaultChartHeight = 540

	pixelsPerInch = 96
)

// WriteChartPNG renders the series as a bar chart. Non-positive sizes select
// the defaults.
func WriteChartPNG(w io.Writer, s Series, width, height int) error {
	if len(s.Points) == 0 {
		return ErrNoData
	}
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}

	p := plot.New()
	p.Title.Text = s.title()
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "t CO2"

	values := make(plotter.Values, len(s.Points))
	labels := make([]string, len(s.Points))
	for i, pt := range s.Points {
		values[i] = pt.Value
		labels[i] = pt.Label
	}

	bars, err := plotter.NewBarChart(values, barWidth(width, len(values)))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}

	p.Add(plotter.NewGrid(), bars)
	p.NominalX(labels...)

	wt, err := p.WriterTo(pixels(width), pixels(height), "png")
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / pixelsPerInch
}

// barWidth spreads bars across roughly two thirds of the plot width.
func barWidth(width, n int) vg.Length {
	w := pixels(width) * 2 / 3 / vg.Length(max(n, 1))
	return min(max(w, vg.Points(2)), vg.Points(40))
}
