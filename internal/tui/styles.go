package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/carbonhub-app/carbonhub/internal/emissions"
	"github.com/carbonhub-app/carbonhub/internal/theme"
)

// Styles are the lipgloss styles of one theme.
type Styles struct {
	Palette theme.Palette

	Title     lipgloss.Style
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Card      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Selected  lipgloss.Style
	Row       lipgloss.Style

	Low    lipgloss.Style
	Medium lipgloss.Style
	High   lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t theme.Theme) Styles {
	p := t.Palette()
	return Styles{
		Palette: p,

		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Header: lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Subtle: lipgloss.NewStyle().Foreground(p.TextSecondary),
		Label:  lipgloss.NewStyle().Foreground(p.TextSecondary),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Info:   lipgloss.NewStyle().Foreground(p.Primary),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(p.Destructive),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(p.TextSecondary).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Primary).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Row:       lipgloss.NewStyle().Foreground(p.Text),

		Low:    lipgloss.NewStyle().Foreground(p.Success),
		Medium: lipgloss.NewStyle().Foreground(p.Warning),
		High:   lipgloss.NewStyle().Foreground(p.Destructive),
	}
}

// Level returns the style for an emission level.
func (s Styles) Level(l emissions.Level) lipgloss.Style {
	switch l {
	case emissions.LevelHigh:
		return s.High
	case emissions.LevelMedium:
		return s.Medium
	default:
		return s.Low
	}
}

// Direction colors a trend: rising emissions are bad news.
func (s Styles) Direction(d emissions.Direction) lipgloss.Style {
	switch d {
	case emissions.DirectionUp:
		return s.High
	case emissions.DirectionDown:
		return s.Low
	default:
		return s.Subtle
	}
}
