package emissions

// Level buckets an emission value for coloring.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// ColorScheme is the set of hex colors used to render a value of some level.
type ColorScheme struct {
	Level     Level  `json:"level"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Text      string `json:"text"`
}

// Relative level thresholds, as a share of the series maximum.
const (
	lowRatio    = 0.3
	mediumRatio = 0.7
)

// Absolute level thresholds in tonnes.
const (
	lowTonnes    = 0.5
	mediumTonnes = 2.0
)

var schemes = map[Level]ColorScheme{ //nolint:gochecknoglobals // lookup table
	LevelLow:    {Level: LevelLow, Primary: "#10b981", Secondary: "#d1fae5", Text: "#065f46"},
	LevelMedium: {Level: LevelMedium, Primary: "#f59e0b", Secondary: "#fef3c7", Text: "#92400e"},
	LevelHigh:   {Level: LevelHigh, Primary: "#ef4444", Secondary: "#fee2e2", Text: "#991b1b"},
}

// ColorSchemeFor picks a scheme from the value's share of maxValue:
// up to 30% is low, up to 70% medium, anything above high. A non-positive
// maxValue is treated as a zero share.
func ColorSchemeFor(value, maxValue float64) ColorScheme {
	ratio := 0.0
	if maxValue > 0 {
		ratio = value / maxValue
	}

	switch {
	case ratio <= lowRatio:
		return schemes[LevelLow]
	case ratio <= mediumRatio:
		return schemes[LevelMedium]
	default:
		return schemes[LevelHigh]
	}
}

// LevelFor classifies an absolute tonne value: below 0.5 low, below 2 medium.
func LevelFor(totalTon float64) Level {
	switch {
	case totalTon < lowTonnes:
		return LevelLow
	case totalTon < mediumTonnes:
		return LevelMedium
	default:
		return LevelHigh
	}
}
