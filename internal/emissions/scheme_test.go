package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorSchemeFor(t *testing.T) {
	assert.Equal(t, LevelLow, ColorSchemeFor(3, 10).Level)
	assert.Equal(t, LevelMedium, ColorSchemeFor(5, 10).Level)
	assert.Equal(t, LevelMedium, ColorSchemeFor(7, 10).Level)
	assert.Equal(t, LevelHigh, ColorSchemeFor(8, 10).Level)
	assert.Equal(t, LevelLow, ColorSchemeFor(5, 0).Level, "zero max is a zero share")
	assert.Equal(t, "#ef4444", ColorSchemeFor(10, 10).Primary)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelLow, LevelFor(0.49))
	assert.Equal(t, LevelMedium, LevelFor(0.5))
	assert.Equal(t, LevelMedium, LevelFor(1.99))
	assert.Equal(t, LevelHigh, LevelFor(2))
}

func TestEquivalency(t *testing.T) {
	out := Equivalency(1)
	assert.False(t, out.IsEmpty)
	assert.InDelta(t, 1000.0, out.InputKg, 1e-9)
	assert.Equal(t, "Equivalent to driving ~5,208 miles or charging ~121,655 smartphones", out.DisplayText)

	assert.True(t, Equivalency(0.0005).IsEmpty)
	assert.True(t, Equivalency(-3).IsEmpty)

	big := Equivalency(1_000)
	assert.Contains(t, big.DisplayText, "million")
}
