package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/linkhive/server/internal/cache"
	"github.com/linkhive/server/internal/config"
	"github.com/linkhive/server/internal/logger"
	"github.com/linkhive/server/internal/metrics"
)

// how long trending results stay cached in Redis
const trendingCacheTTL = 5 * time.Minute

// creates the shared infrastructure clients. A Redis outage is logged
// and the server runs without caching; trending falls back to direct
// database reads.
func InitializeServices(cfg *config.Config) *Services {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	collector := metrics.NewCollector(registry)

	trendingCache, err := cache.New(cfg.RedisURL, trendingCacheTTL)
	if err != nil {
		logger.ErrorErr(err, "failed to connect to redis, continuing without cache")
		trendingCache = nil
	}

	return &Services{
		Cache:     trendingCache,
		Collector: collector,
		Registry:  registry,
	}
}
