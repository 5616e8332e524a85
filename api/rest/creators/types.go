package creators

import (
	"github.com/linkhive/server/internal/eligibility"
	"github.com/linkhive/server/internal/timeseries"
	"github.com/linkhive/server/internal/trends"
)

// analytics query bounds
const (
	defaultAnalyticsDays = 30
	maxAnalyticsDays     = 365
	anomalyThreshold     = 2.0
)

// EligibilityResponse pairs the check outcome with the metrics it was
// computed from
type EligibilityResponse struct {
	Result  eligibility.Result         `json:"result"`
	Metrics eligibility.CreatorMetrics `json:"metrics"`
}

// AnalyticsResponse carries a daily series with its trend analysis and
// forward projection
type AnalyticsResponse struct {
	Series    []timeseries.Point     `json:"series"`
	Analysis  trends.Analysis        `json:"analysis"`
	Forecast  []trends.ForecastPoint `json:"forecast"`
	Anomalies []string               `json:"anomalies"`
	Days      int                    `json:"days"`
}
