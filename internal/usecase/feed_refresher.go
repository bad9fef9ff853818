package usecase

import (
	"context"
	"time"

	"guesthouse-ops-service/pkg/logger"
)

// Invalidator drops cached data
type Invalidator interface {
	Invalidate()
}

// FeedRefresher drops the cached schedule and warms it with today's reports
type FeedRefresher struct {
	cache   Invalidator
	reports *ReportService
	logger  logger.Logger
	now     func() time.Time
}

// NewFeedRefresher creates a new feed refresher
func NewFeedRefresher(cache Invalidator, reports *ReportService, now func() time.Time, logger logger.Logger) *FeedRefresher {
	if now == nil {
		now = time.Now
	}
	return &FeedRefresher{
		cache:   cache,
		reports: reports,
		logger:  logger,
		now:     now,
	}
}

// Refresh invalidates the cache and refetches the reservation and cleaning windows
func (r *FeedRefresher) Refresh(ctx context.Context) error {
	r.cache.Invalidate()

	now := r.now()
	if _, err := r.reports.ReservationReport(ctx, now); err != nil {
		return err
	}
	if _, err := r.reports.CleaningReport(ctx, now); err != nil {
		return err
	}
	return nil
}

// Run refreshes on every tick until ctx is cancelled
func (r *FeedRefresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Feed refresher stopped")
			return
		case <-ticker.C:
			r.logger.Debug("Refreshing schedule feed")
			if err := r.Refresh(ctx); err != nil {
				r.logger.Error("Error refreshing schedule feed", "error", err)
			}
		}
	}
}
