// Package theme defines the light and dark color palettes and persists the
// user's choice through a prefs.Store.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme names a palette.
type Theme string

// Available themes.
const (
	Dark  Theme = "dark"
	Light Theme = "light"

	// Default is used when nothing has been saved.
	Default = Dark

	// StorageKey is the preference key holding the saved theme.
	StorageKey = "carbonhub_theme"
)

// ErrUnknownTheme is returned by Parse for names other than dark and light.
const ErrUnknownTheme = constError("unknown theme")

type constError string

func (e constError) Error() string { return string(e) }

// Parse accepts "dark" or "light" in any case.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t != Light
}

func (t Theme) String() string { return string(t) }

// Palette holds the hex colors of one theme.
type Palette struct {
	Background    lipgloss.Color
	Surface       lipgloss.Color
	Card          lipgloss.Color
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	Primary       lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Destructive   lipgloss.Color
}

//nolint:gochecknoglobals // Fixed palettes.
var (
	darkPalette = Palette{
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Card:          "#334155",
		Text:          "#f8fafc",
		TextSecondary: "#cbd5e1",
		Primary:       "#0ea5e9",
		Border:        "#475569",
		Success:       "#10b981",
		Warning:       "#f59e0b",
		Destructive:   "#ef4444",
	}
	lightPalette = Palette{
		Background:    "#ffffff",
		Surface:       "#f8fafc",
		Card:          "#ffffff",
		Text:          "#0f172a",
		TextSecondary: "#64748b",
		Primary:       "#0ea5e9",
		Border:        "#e2e8f0",
		Success:       "#10b981",
		Warning:       "#f59e0b",
		Destructive:   "#ef4444",
	}
)

// Palette returns the colors for t.
func (t Theme) Palette() Palette {
	if t == Light {
		return lightPalette
	}
	return darkPalette
}
