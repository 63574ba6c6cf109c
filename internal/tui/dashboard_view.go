package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carbonhub-app/carbonhub/internal/api"
	"github.com/carbonhub-app/carbonhub/internal/emissions"
)

const (
	colName      = 28
	colIndustry  = 18
	colLocation  = 18
	colEmissions = 16
	borderPad    = 4
)

// View implements tea.Model.
func (m DashboardModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return m.renderLoadingView()
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m DashboardModel) renderLoadingView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("carbonhub"),
		"",
		m.loading.View(),
	)
}

func (m DashboardModel) renderErrorView() string {
	help := "r retry | q quit"
	if len(m.all) > 0 {
		help = "r retry | esc back | q quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)),
		"",
		m.styles.Subtle.Render(help),
	)
}

func (m DashboardModel) renderListView() string {
	sections := []string{
		m.styles.Title.Render(fmt.Sprintf("carbonhub | Companies (%d)", len(m.all))),
		m.styles.Header.Render(companyColumns("Company", "Industry", "Location", "Annual")),
	}

	if m.list.Len() == 0 {
		sections = append(sections, m.styles.Subtle.Render("  No companies match the filter"))
	} else {
		sections = append(sections, m.list.View())
	}

	sections = append(sections, m.renderStatusBar())
	if m.showFilter {
		sections = append(sections, m.styles.Label.Render("Filter: ")+m.filter.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderStatusBar() string {
	filterStatus := ""
	if m.filter.Value() != "" {
		filterStatus = fmt.Sprintf(" | Filtered: %d/%d", m.list.Len(), len(m.all))
	}
	status := fmt.Sprintf("Sort: %s%s | enter open | / filter | s sort | t theme | q quit", m.sortBy, filterStatus)
	return m.styles.Subtle.Render(status)
}

func (m DashboardModel) renderCompanyRow(c api.Company, selected bool) string {
	marker := "  "
	style := m.styles.Row
	if selected {
		marker = "> "
		style = m.styles.Selected
	}
	value := emissions.FormatEmissionValue(c.AnnualEmissions, true)
	return style.Render(marker + companyColumns(c.Name, c.Industry, c.Location, value)[2:])
}

func companyColumns(name, industry, location, value string) string {
	return fmt.Sprintf("  %-*s %-*s %-*s %*s",
		colName, truncate(name, colName),
		colIndustry, truncate(industry, colIndustry),
		colLocation, truncate(location, colLocation),
		colEmissions, value)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func (m DashboardModel) renderDetailView() string {
	if m.selected == nil {
		return ""
	}
	c := m.selected
	points := m.points()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(c.Name))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(strings.Join(nonEmpty(c.Industry, c.Location), " | ")))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if len(points) == 0 {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("No %s emissions data available", m.tab)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderChart(points))
		b.WriteString("\n")
		b.WriteString(m.renderStats(points))
		b.WriteString("\n")
		b.WriteString(m.renderTrend(points))
		b.WriteString("\n")
		b.WriteString(m.renderImpact(points))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("tab/1-3 period | e export csv | t theme | r reload | esc back | q quit"))
	return b.String()
}

func (m DashboardModel) renderTabs() string {
	tabs := make([]string, 0, len(emissions.PeriodKinds()))
	for i, kind := range emissions.PeriodKinds() {
		label := fmt.Sprintf("%d %s", i+1, kind.Title())
		if kind == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m DashboardModel) chartWidth() int {
	return min(max(m.width-borderPad, minChartWidth), maxChartWidth)
}

func (m DashboardModel) renderChart(points []emissions.ChartPoint) string {
	shown := points
	heading := m.tab.Title() + " emissions"
	if m.tab == emissions.PeriodDaily {
		shown = emissions.Window(points, emissions.DailyWindow)
		heading = fmt.Sprintf("Daily emissions (last %d days)", len(shown))
	}

	width := m.chartWidth()
	chart := m.styles.renderBarChart(shown, width-borderPad)
	spark := m.styles.Info.Render(RenderSparkline(emissions.Values(shown), width-borderPad))

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(heading),
		"",
		chart,
		"",
		spark,
	)
	return m.styles.Card.Width(width).Render(body)
}

func (m DashboardModel) renderStats(points []emissions.ChartPoint) string {
	s := emissions.SummarizePoints(points)
	cell := func(label string, v float64) string {
		return m.styles.Label.Render(label+" ") + m.styles.Value.Render(emissions.FormatEmissionValue(v, true))
	}
	row := strings.Join([]string{
		cell("Total", s.Total),
		cell("Average", s.Average),
		cell("Max", s.Max),
		cell("Min", s.Min),
		m.styles.Label.Render("Periods ") + m.styles.Value.Render(fmt.Sprint(s.Count)),
	}, "   ")
	return m.styles.Card.Width(m.chartWidth()).Render(row)
}

func (m DashboardModel) renderTrend(points []emissions.ChartPoint) string {
	t := emissions.AnalyzePointsTrend(points)
	badge := m.styles.Direction(t.Direction).Render(fmt.Sprintf("%s %s", t.Direction.Arrow(), trendLabel(t.Trend)))
	return m.styles.Label.Render("Trend ") + badge + "  " + m.styles.Subtle.Render(t.Description)
}

func (m DashboardModel) renderImpact(points []emissions.ChartPoint) string {
	latest := points[len(points)-1]
	level := emissions.LevelFor(latest.TotalTon)
	line := m.styles.Label.Render("Latest ") +
		m.styles.Level(level).Render(fmt.Sprintf("%s (%s impact)", latest.Formatted, level))

	if eq := emissions.Equivalency(latest.Value); !eq.IsEmpty {
		line += "\n" + m.styles.Subtle.Render(eq.DisplayText)
	}
	return line
}

func trendLabel(t emissions.Trend) string {
	switch t {
	case emissions.TrendIncreasing:
		return "Increasing"
	case emissions.TrendDecreasing:
		return "Decreasing"
	case emissions.TrendStable:
		return "Stable"
	default:
		return "Insufficient data"
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
