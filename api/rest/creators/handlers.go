package creators

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/auth"
	"github.com/linkhive/server/internal/eligibility"
	"github.com/linkhive/server/internal/errors"
	"github.com/linkhive/server/internal/timeseries"
	"github.com/linkhive/server/internal/trends"
	"github.com/linkhive/server/linkhive/creators"
)

// GetEligibilityHandler evaluates the authenticated user's
// monetization eligibility from a fresh metrics snapshot
func GetEligibilityHandler(creatorRepo *creators.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		metrics, err := creatorRepo.MetricsSnapshot(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to load creator metrics", err)
			return
		}

		c.JSON(http.StatusOK, EligibilityResponse{
			Result:  eligibility.Check(metrics),
			Metrics: metrics,
		})
	}
}

// ApplyHandler runs the eligibility check and, on success, records the
// monetization application. Ineligible applicants get the full reason
// list back instead of a record.
func ApplyHandler(creatorRepo *creators.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		metrics, err := creatorRepo.MetricsSnapshot(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to load creator metrics", err)
			return
		}

		result := eligibility.Check(metrics)
		if !result.IsEligible {
			errors.NotEligible(c, result.Reasons)
			return
		}

		share := eligibility.RevenueShare(result.QualityScore)

		monetization, err := creatorRepo.UpsertMonetization(c.Request.Context(), userID, "approved", result.QualityScore, share)
		if err != nil {
			errors.InternalError(c, "failed to record monetization application", err)
			return
		}

		c.JSON(http.StatusCreated, monetization)
	}
}

// GetViewsAnalyticsHandler returns the creator's daily view counts
// with trend analysis and a forward projection
func GetViewsAnalyticsHandler(creatorRepo *creators.Repository, engagementRepo ViewSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		days := parseDays(c.Query("days"))
		since := time.Now().UTC().AddDate(0, 0, -days)

		views, err := engagementRepo.ViewTimestampsForOwner(c.Request.Context(), userID, since)
		if err != nil {
			errors.InternalError(c, "failed to load view analytics", err)
			return
		}

		series := timeseries.BucketCountByDay(views)
		c.JSON(http.StatusOK, buildAnalytics(series, days))
	}
}

// GetEarningsAnalyticsHandler returns the creator's daily earnings
// with trend analysis and a forward projection
func GetEarningsAnalyticsHandler(creatorRepo *creators.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		days := parseDays(c.Query("days"))
		since := time.Now().UTC().AddDate(0, 0, -days)

		earnings, err := creatorRepo.EarningsSamplesSince(c.Request.Context(), userID, since)
		if err != nil {
			errors.InternalError(c, "failed to load earnings analytics", err)
			return
		}

		samples := make([]timeseries.Sample, 0, len(earnings))
		for _, e := range earnings {
			samples = append(samples, timeseries.Sample{At: e.At, Value: e.Amount})
		}

		series := timeseries.BucketSumByDay(samples)
		c.JSON(http.StatusOK, buildAnalytics(series, days))
	}
}

// ViewSource provides view event timestamps for a content owner
type ViewSource interface {
	ViewTimestampsForOwner(ctx context.Context, ownerID string, since time.Time) ([]time.Time, error)
}

func buildAnalytics(series []timeseries.Point, days int) AnalyticsResponse {
	anomalies := make([]string, 0)
	for _, d := range trends.DetectAnomalies(series, anomalyThreshold) {
		anomalies = append(anomalies, d.Format("2006-01-02"))
	}

	return AnalyticsResponse{
		Series:    series,
		Analysis:  trends.Analyze(series),
		Forecast:  trends.Forecast(series, trends.DefaultForecastPeriods, trends.DefaultSmoothingAlpha),
		Anomalies: anomalies,
		Days:      days,
	}
}

func parseDays(s string) int {
	if s == "" {
		return defaultAnalyticsDays
	}

	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultAnalyticsDays
	}

	if v > maxAnalyticsDays {
		return maxAnalyticsDays
	}

	return v
}
