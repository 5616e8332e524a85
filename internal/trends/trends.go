// Package trends characterizes the direction and volatility of daily
// count series and produces short-horizon forecasts. All functions are
// pure; callers fetch and bucket the underlying rows (see the
// timeseries package).
package trends

import (
	"github.com/linkhive/server/internal/timeseries"
)

// trend classifications
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// slope thresholds for classifying a fitted trend line
const (
	slopeIncreasing = 0.5
	slopeDecreasing = -0.5
)

// summary of a series' direction and volatility
type Analysis struct {
	Trend             string  `json:"trend"`
	PercentageChange  float64 `json:"percentage_change"`
	AverageGrowthRate float64 `json:"average_growth_rate"`
	Volatility        float64 `json:"volatility"`
}

// fits a least-squares line through the series and classifies its
// direction. Series with fewer than 2 points come back stable with all
// zeroes. A series whose first value is 0 reports a percentage change
// of 0 rather than a division by zero.
func Analyze(series []timeseries.Point) Analysis {
	if len(series) < 2 {
		return Analysis{Trend: TrendStable}
	}

	sorted := timeseries.SortAscending(series)
	values := timeseries.Values(sorted)

	slope := regressionSlope(values)

	trend := TrendStable
	if slope > slopeIncreasing {
		trend = TrendIncreasing
	} else if slope < slopeDecreasing {
		trend = TrendDecreasing
	}

	first := values[0]
	last := values[len(values)-1]

	var percentageChange float64
	if first != 0 {
		percentageChange = (last - first) / first * 100
	}

	return Analysis{
		Trend:             trend,
		PercentageChange:  percentageChange,
		AverageGrowthRate: averageGrowthRate(values),
		Volatility:        timeseries.StdDev(values),
	}
}

// ordinary least squares slope with index position as x
func regressionSlope(values []float64) float64 {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumXX float64

	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0
	}

	return (n*sumXY - sumX*sumY) / denominator
}

// mean of period-over-period percentage deltas, skipping any period
// where the prior value is 0
func averageGrowthRate(values []float64) float64 {
	var sum float64
	var count int

	for i := 1; i < len(values); i++ {
		prior := values[i-1]
		if prior == 0 {
			continue
		}

		sum += (values[i] - prior) / prior * 100
		count++
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}
