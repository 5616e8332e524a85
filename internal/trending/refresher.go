package trending

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/linkhive/server/internal/logger"
	"github.com/linkhive/server/internal/metrics"
)

// periodically recomputes the trending_topics table. On-demand
// triggers share a rate limiter with the ticker so bursts of triggers
// cannot stampede the database.
type Refresher struct {
	service   *Service
	interval  time.Duration
	limiter   *rate.Limiter
	trigger   chan struct{}
	collector *metrics.Collector // nil disables metrics
}

func NewRefresher(service *Service, interval time.Duration, collector *metrics.Collector) *Refresher {
	return &Refresher{
		service:  service,
		interval: interval,
		// at most one refresh per minute no matter who asks
		limiter:   rate.NewLimiter(rate.Every(time.Minute), 1),
		trigger:   make(chan struct{}, 1),
		collector: collector,
	}
}

// requests an immediate refresh; coalesces if one is already pending
func (r *Refresher) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// runs the refresh loop until the context is cancelled
func (r *Refresher) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logger.Info("trending refresher started", "interval", r.interval)

	for {
		select {
		case <-ctx.Done():
			logger.Info("trending refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.trigger:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if err := r.limiter.Wait(ctx); err != nil {
		return // context cancelled
	}

	err := r.service.RefreshTopics(ctx)
	if err != nil {
		logger.ErrorErr(err, "trending topics refresh failed")
	}

	if r.collector != nil {
		r.collector.RecordRefresh(err)
	}
}
