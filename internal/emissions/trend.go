package emissions

import (
	"fmt"
	"math"
)

const insufficientDataDescription = "Not enough data for trend analysis"

// AnalyzeTrend compares the mean of the first floor(n/2) values with the mean
// of the remainder. A change under StableThresholdPercent in either direction
// is stable. The percentage is zero when the first half averages zero.
//
// values must already be in chronological order.
func AnalyzeTrend(values []float64) TrendAnalysis {
	if len(values) < 2 { //nolint:mnd // two periods are needed to compare
		return TrendAnalysis{
			Trend:       TrendInsufficientData,
			Direction:   DirectionNeutral,
			Description: insufficientDataDescription,
		}
	}

	mid := len(values) / 2 //nolint:mnd // halves
	firstAvg := mean(values[:mid])
	secondAvg := mean(values[mid:])

	percentage := 0.0
	if firstAvg > 0 {
		percentage = (secondAvg - firstAvg) / firstAvg * percentMultiplier
	}

	result := TrendAnalysis{
		Percentage:      Round(percentage, 1),
		FirstPeriodAvg:  Round(firstAvg, 2),
		SecondPeriodAvg: Round(secondAvg, 2),
	}

	switch {
	case math.Abs(percentage) < StableThresholdPercent:
		result.Trend = TrendStable
		result.Direction = DirectionNeutral
		result.Description = "Emissions are relatively stable"
	case percentage > 0:
		result.Trend = TrendIncreasing
		result.Direction = DirectionUp
		result.Description = fmt.Sprintf("Emissions increasing by %.1f%%", math.Abs(percentage))
	default:
		result.Trend = TrendDecreasing
		result.Direction = DirectionDown
		result.Description = fmt.Sprintf("Emissions decreasing by %.1f%%", math.Abs(percentage))
	}

	return result
}

// AnalyzePointsTrend runs AnalyzeTrend over the values of normalized points.
func AnalyzePointsTrend(points []ChartPoint) TrendAnalysis {
	return AnalyzeTrend(Values(points))
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += sanitize(v)
	}
	return sum / float64(len(values))
}

// Arrow returns the glyph used for a direction in terminal output.
func (d Direction) Arrow() string {
	switch d {
	case DirectionUp:
		return "▲"
	case DirectionDown:
		return "▼"
	default:
		return "●"
	}
}
