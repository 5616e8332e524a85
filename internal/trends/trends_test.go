package trends

import (
	"testing"
	"time"

	"github.com/linkhive/server/internal/timeseries"
)

func series(values ...float64) []timeseries.Point {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	points := make([]timeseries.Point, len(values))
	for i, v := range values {
		points[i] = timeseries.Point{Date: start.AddDate(0, 0, i), Value: v}
	}

	return points
}

func TestAnalyze_Classification(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{name: "constant increment", values: []float64{10, 20, 30, 40, 50}, want: TrendIncreasing},
		{name: "constant decrement", values: []float64{50, 40, 30, 20, 10}, want: TrendDecreasing},
		{name: "identical values", values: []float64{25, 25, 25, 25}, want: TrendStable},
		{name: "slope inside thresholds", values: []float64{10, 10.2, 10.4, 10.6}, want: TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(series(tt.values...))
			if got.Trend != tt.want {
				t.Errorf("Analyze().Trend = %q, want %q", got.Trend, tt.want)
			}
		})
	}
}

func TestAnalyze_ShortSeries(t *testing.T) {
	got := Analyze(series(42))

	if got.Trend != TrendStable {
		t.Errorf("Trend = %q, want stable", got.Trend)
	}

	if got.PercentageChange != 0 || got.AverageGrowthRate != 0 || got.Volatility != 0 {
		t.Errorf("short series should zero all fields, got %+v", got)
	}
}

func TestAnalyze_PercentageChange(t *testing.T) {
	got := Analyze(series(50, 75))

	if got.PercentageChange != 50 {
		t.Errorf("PercentageChange = %v, want 50", got.PercentageChange)
	}
}

// a series starting at zero has no meaningful relative change; the
// defined behavior is 0, not Inf
func TestAnalyze_PercentageChange_ZeroFirstValue(t *testing.T) {
	got := Analyze(series(0, 50))

	if got.PercentageChange != 0 {
		t.Errorf("PercentageChange = %v, want 0 for zero first value", got.PercentageChange)
	}
}

func TestAnalyze_AverageGrowthRate_SkipsZeroPrior(t *testing.T) {
	// periods: 0->10 (skipped, prior 0), 10->20 (+100%), 20->10 (-50%)
	got := Analyze(series(0, 10, 20, 10))

	if got.AverageGrowthRate != 25 {
		t.Errorf("AverageGrowthRate = %v, want 25", got.AverageGrowthRate)
	}
}

func TestAnalyze_UnorderedInput(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// same data as series(10, 20, 30) but delivered out of order
	shuffled := []timeseries.Point{
		{Date: start.AddDate(0, 0, 2), Value: 30},
		{Date: start, Value: 10},
		{Date: start.AddDate(0, 0, 1), Value: 20},
	}

	got := Analyze(shuffled)

	if got.Trend != TrendIncreasing {
		t.Errorf("Trend = %q, want increasing for unordered input", got.Trend)
	}

	if got.PercentageChange != 200 {
		t.Errorf("PercentageChange = %v, want 200", got.PercentageChange)
	}
}

func TestForecast_ShapeAndConfidence(t *testing.T) {
	points := Forecast(series(10, 12, 11, 14, 13, 15, 14), DefaultForecastPeriods, DefaultSmoothingAlpha)

	if len(points) != 7 {
		t.Fatalf("expected 7 forecast points, got %d", len(points))
	}

	for i, p := range points {
		if i > 0 {
			gap := p.Date.Sub(points[i-1].Date)
			if gap != 24*time.Hour {
				t.Errorf("point %d date gap = %v, want 24h", i, gap)
			}

			if p.ConfidenceLevel > points[i-1].ConfidenceLevel {
				t.Errorf("confidence level increased at point %d", i)
			}

			// bounds widen with the horizon
			prevWidth := points[i-1].ConfidenceUpper - points[i-1].ConfidenceLower
			width := p.ConfidenceUpper - p.ConfidenceLower
			if width < prevWidth {
				t.Errorf("confidence bounds narrowed at point %d", i)
			}
		}

		if p.ConfidenceLevel < 50 {
			t.Errorf("confidence level %d below floor of 50", p.ConfidenceLevel)
		}

		if p.ConfidenceLower < 0 {
			t.Errorf("confidence lower bound %v below 0", p.ConfidenceLower)
		}
	}
}

func TestForecast_FlatPointForecast(t *testing.T) {
	points := Forecast(series(10, 20, 30), 3, 0.3)

	// single exponential smoothing yields one flat value for every period
	for i := 1; i < len(points); i++ {
		if points[i].PredictedValue != points[0].PredictedValue {
			t.Errorf("point forecast should be flat, got %v then %v",
				points[0].PredictedValue, points[i].PredictedValue)
		}
	}
}

func TestForecast_ConfidenceLevelFloor(t *testing.T) {
	points := Forecast(series(10, 20, 30), 12, 0.3)

	last := points[len(points)-1]
	if last.ConfidenceLevel != 50 {
		t.Errorf("confidence level = %d, want floor of 50 at period 12", last.ConfidenceLevel)
	}
}

func TestForecast_ShortSeries(t *testing.T) {
	points := Forecast(series(42), 7, 0.3)

	if len(points) != 0 {
		t.Errorf("expected empty forecast for single-point series, got %d points", len(points))
	}
}

func TestDetectAnomalies(t *testing.T) {
	// one wild spike among calm values
	s := series(10, 11, 10, 9, 10, 11, 100)

	anomalies := DetectAnomalies(s, 2)

	if len(anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(anomalies))
	}

	if !anomalies[0].Equal(s[6].Date) {
		t.Errorf("anomaly date = %v, want %v", anomalies[0], s[6].Date)
	}
}

func TestDetectAnomalies_Guards(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{name: "too short", values: []float64{10, 100}},
		{name: "zero variance", values: []float64{10, 10, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectAnomalies(series(tt.values...), 2); len(got) != 0 {
				t.Errorf("expected no anomalies, got %d", len(got))
			}
		})
	}
}
