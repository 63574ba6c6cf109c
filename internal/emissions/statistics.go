package emissions

import "math"

// Summarize reduces values to summary statistics. Empty input returns all zeros.
func Summarize(values []float64) SummaryStatistics {
	if len(values) == 0 {
		return SummaryStatistics{}
	}

	total := 0.0
	maxV := math.Inf(-1)
	minV := math.Inf(1)
	for _, v := range values {
		v = sanitize(v)
		total += v
		maxV = math.Max(maxV, v)
		minV = math.Min(minV, v)
	}

	return SummaryStatistics{
		Total:   Round(total, 2),
		Average: Round(total/float64(len(values)), 2),
		Max:     Round(maxV, 2),
		Min:     Round(minV, 2),
		Count:   len(values),
	}
}

// SummarizePoints summarizes the Value of each chart point.
func SummarizePoints(points []ChartPoint) SummaryStatistics {
	return Summarize(Values(points))
}

// SummarizeRecords summarizes raw records using Record.Resolved, so a
// record's generic value takes precedence over its totalTon.
func SummarizeRecords(records []Record) SummaryStatistics {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Resolved()
	}
	return Summarize(values)
}

// Round rounds v to the given number of decimals, halves away from zero.
func Round(v float64, decimals int) float64 {
	const base = 10
	m := math.Pow(base, float64(decimals))
	return math.Round(v*m) / m
}
