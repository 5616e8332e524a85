// Package metrics collects and exposes Prometheus metrics for the
// discovery surfaces.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records the counters and latencies the server cares about.
type Collector struct {
	feedGenerations   prometheus.Counter
	feedItemsRanked   prometheus.Counter
	feedLatency       prometheus.Histogram
	trendingRequests  *prometheus.CounterVec
	trendingRefreshes prometheus.Counter
	refreshFailures   prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		feedGenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkhive_feed_generations_total",
			Help: "Number of personalized feeds generated",
		}),
		feedItemsRanked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkhive_feed_items_ranked_total",
			Help: "Number of candidate items scored across all feeds",
		}),
		feedLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkhive_feed_generation_seconds",
			Help:    "Latency of feed generation",
			Buckets: prometheus.DefBuckets,
		}),
		trendingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linkhive_trending_requests_total",
			Help: "Trending list requests by surface",
		}, []string{"surface"}),
		trendingRefreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkhive_trending_refreshes_total",
			Help: "Completed trending topic refresh runs",
		}),
		refreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linkhive_trending_refresh_failures_total",
			Help: "Failed trending topic refresh runs",
		}),
	}

	reg.MustRegister(
		c.feedGenerations,
		c.feedItemsRanked,
		c.feedLatency,
		c.trendingRequests,
		c.trendingRefreshes,
		c.refreshFailures,
	)

	return c
}

// RecordFeedGeneration records one generated feed and its item count
// and latency.
func (c *Collector) RecordFeedGeneration(items int, duration time.Duration) {
	c.feedGenerations.Inc()
	c.feedItemsRanked.Add(float64(items))
	c.feedLatency.Observe(duration.Seconds())
}

// RecordTrendingRequest records a request against one trending surface
// (topics, bookmarks, collections, personalized).
func (c *Collector) RecordTrendingRequest(surface string) {
	c.trendingRequests.WithLabelValues(surface).Inc()
}

// RecordRefresh records the outcome of a topics refresh run.
func (c *Collector) RecordRefresh(err error) {
	if err != nil {
		c.refreshFailures.Inc()
		return
	}

	c.trendingRefreshes.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
