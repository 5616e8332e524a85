package trends

import (
	"math"
	"time"

	"github.com/linkhive/server/internal/timeseries"
)

// forecast defaults
const (
	DefaultForecastPeriods = 7
	DefaultSmoothingAlpha  = 0.3
)

// confidence bound parameters: a 95% z-score widened 10% per period
// out, with the stated confidence level stepping down 5 points per
// period to a floor of 50
const (
	confidenceZ        = 1.96
	confidenceWidening = 0.1
	confidenceStep     = 5
	confidenceFloor    = 50
	confidenceBase     = 95
)

// a single forecast point with confidence bounds
type ForecastPoint struct {
	Date            time.Time `json:"date"`
	PredictedValue  float64   `json:"predicted_value"`
	ConfidenceLower float64   `json:"confidence_lower"`
	ConfidenceUpper float64   `json:"confidence_upper"`
	ConfidenceLevel int       `json:"confidence_level"`
}

// projects the series forward with single exponential smoothing.
// The final smoothed value is used as a flat point-forecast for every
// future period; only the confidence bounds widen with the horizon.
// Dates step forward one day per period from the last observation,
// regardless of the input series' granularity. Series with fewer than
// 2 points yield an empty forecast.
func Forecast(series []timeseries.Point, periodsAhead int, alpha float64) []ForecastPoint {
	if len(series) < 2 || periodsAhead <= 0 {
		return []ForecastPoint{}
	}

	sorted := timeseries.SortAscending(series)
	values := timeseries.Values(sorted)

	smoothed := values[0]
	for _, v := range values[1:] {
		smoothed = alpha*v + (1-alpha)*smoothed
	}

	stddev := timeseries.StdDev(values)
	lastDate := sorted[len(sorted)-1].Date

	points := make([]ForecastPoint, 0, periodsAhead)

	for i := 1; i <= periodsAhead; i++ {
		multiplier := confidenceZ * (1 + float64(i-1)*confidenceWidening)
		margin := stddev * multiplier

		level := confidenceBase - i*confidenceStep
		if level < confidenceFloor {
			level = confidenceFloor
		}

		points = append(points, ForecastPoint{
			Date:            lastDate.AddDate(0, 0, i),
			PredictedValue:  math.Round(smoothed),
			ConfidenceLower: math.Max(0, math.Round(smoothed-margin)),
			ConfidenceUpper: math.Round(smoothed + margin),
			ConfidenceLevel: level,
		})
	}

	return points
}

// flags dates whose value sits more than threshold standard deviations
// from the series mean. Returns an empty list for series shorter than 3
// points or with no variance.
func DetectAnomalies(series []timeseries.Point, threshold float64) []time.Time {
	if len(series) < 3 {
		return []time.Time{}
	}

	values := timeseries.Values(series)
	mean := timeseries.Mean(values)
	stddev := timeseries.StdDev(values)

	if stddev == 0 {
		return []time.Time{}
	}

	var anomalies []time.Time

	for _, p := range series {
		zScore := math.Abs(p.Value-mean) / stddev
		if zScore > threshold {
			anomalies = append(anomalies, p.Date)
		}
	}

	if anomalies == nil {
		return []time.Time{}
	}

	return anomalies
}
