package worker

import (
	"context"
	"time"

	"giveaway/internal/logger"
)

// Refresher is the slice of the dashboard controller the worker needs.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshWorker periodically refetches the pickup list so a long-lived
// dashboard tracks server state between user actions.
type RefreshWorker struct {
	dashboard Refresher
	interval  time.Duration
	log       logger.Logger
}

func NewRefreshWorker(dashboard Refresher, interval time.Duration, log logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &RefreshWorker{
		dashboard: dashboard,
		interval:  interval,
		log:       log,
	}
}

func (w *RefreshWorker) Start(ctx context.Context) {
	w.log.Info("starting refresh worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("refresh worker stopped")
			return
		case <-ticker.C:
			if err := w.dashboard.Refresh(ctx); err != nil {
				w.log.Error("dashboard refresh failed", logger.Error(err))
			}
		}
	}
}
