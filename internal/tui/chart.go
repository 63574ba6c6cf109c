package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

const (
	barRune       = "█"
	minBarWidth   = 10
	sparkRunes    = "▁▂▃▄▅▆▇█"
	chartGapWidth = 2
)

// BarRow is one line of a horizontal bar chart.
type BarRow struct {
	Label string
	Value float64
	Text  string
	Width int
	Level emissions.Level
}

// BarRows scales points to barWidth cells. The largest value fills the bar and
// any positive value gets at least one cell.
func BarRows(points []emissions.ChartPoint, barWidth int) []BarRow {
	maxValue := 0.0
	for _, p := range points {
		maxValue = math.Max(maxValue, p.Value)
	}

	rows := make([]BarRow, 0, len(points))
	for _, p := range points {
		w := 0
		if maxValue > 0 && p.Value > 0 {
			w = max(int(math.Round(p.Value/maxValue*float64(barWidth))), 1)
		}
		rows = append(rows, BarRow{
			Label: p.Label,
			Value: p.Value,
			Text:  emissions.FormatEmissionValue(p.Value, false),
			Width: w,
			Level: emissions.ColorSchemeFor(p.Value, maxValue).Level,
		})
	}
	return rows
}

// RenderBarChart draws points as horizontal bars fitting in width columns.
func RenderBarChart(points []emissions.ChartPoint, width int) string {
	return renderBars(points, width, func(_ emissions.Level, s string) string { return s })
}

func (s Styles) renderBarChart(points []emissions.ChartPoint, width int) string {
	return renderBars(points, width, func(l emissions.Level, bar string) string {
		return s.Level(l).Render(bar)
	})
}

func renderBars(points []emissions.ChartPoint, width int, paint func(emissions.Level, string) string) string {
	if len(points) == 0 {
		return ""
	}

	labelWidth, textWidth := 0, 0
	for _, p := range points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
		textWidth = max(textWidth, lipgloss.Width(emissions.FormatEmissionValue(p.Value, false)))
	}
	barWidth := max(width-labelWidth-textWidth-chartGapWidth, minBarWidth)

	lines := make([]string, 0, len(points))
	for _, r := range BarRows(points, barWidth) {
		bar := paint(r.Level, strings.Repeat(barRune, r.Width))
		pad := strings.Repeat(" ", barWidth-r.Width)
		lines = append(lines, fmt.Sprintf("%-*s %s%s %*s", labelWidth, r.Label, bar, pad, textWidth, r.Text))
	}
	return strings.Join(lines, "\n")
}

// RenderSparkline draws the last width values as a one-line block chart.
// A flat series renders at mid height.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	runes := []rune(sparkRunes)
	top := len(runes) - 1

	var b strings.Builder
	for _, v := range values {
		idx := top / 2
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * float64(top)))
		}
		b.WriteRune(runes[idx])
	}
	return b.String()
}
