package cache

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher re-fetches expired cache entries on a cron schedule so the
// first reader after a quiet period doesn't pay the fetch latency.
// Purely an optimization: correctness still comes from getOrFetch.
type Refresher struct {
	cache    *EntityCache
	schedule string
	logger   *zap.Logger
	cron     *cron.Cron
}

// NewRefresher creates a refresher with a cron schedule such as
// "@every 5m"
func NewRefresher(cache *EntityCache, schedule string, logger *zap.Logger) *Refresher {
	return &Refresher{
		cache:    cache,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start begins the refresh schedule; it returns immediately
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.schedule, func() {
		r.logger.Debug("running scheduled cache refresh", zap.String("schedule", r.schedule))
		r.cache.Refresh(ctx)
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish
func (r *Refresher) Stop() {
	stopCtx := r.cron.Stop()
	<-stopCtx.Done()
}
