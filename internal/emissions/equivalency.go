package emissions

import (
	"fmt"
	"math"
)

// EquivalencyOutput expresses a tonne value as everyday activities.
type EquivalencyOutput struct {
	InputKg     float64 `json:"input_kg"`
	Miles       float64 `json:"miles"`
	Phones      float64 `json:"phones"`
	DisplayText string  `json:"display_text"`
	IsEmpty     bool    `json:"is_empty"`
}

// minEquivalencyKg is the smallest input for which equivalencies are shown.
const minEquivalencyKg = 1.0

// Equivalency converts tonnes CO₂ to miles driven and smartphones charged
// using EPA factors. Inputs under one kilogram produce an empty result.
func Equivalency(tonnes float64) EquivalencyOutput {
	kg := sanitize(tonnes) * TonnesToKg
	if kg < minEquivalencyKg || math.IsInf(kg, 0) {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor

	return EquivalencyOutput{
		InputKg: kg,
		Miles:   miles,
		Phones:  phones,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			formatLarge(miles), formatLarge(phones)),
	}
}

// formatLarge uses "~X.X million/billion" wording past a million.
func formatLarge(n float64) string {
	const billion = 1_000_000_000
	switch {
	case n >= billion:
		return fmt.Sprintf("%.1f billion", n/billion)
	case n >= millionThreshold:
		return fmt.Sprintf("%.1f million", n/millionThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
