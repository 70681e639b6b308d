package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/cache"
	"github.com/spec-kit/timesheet-service/internal/events"
)

// CacheInvalidationWorker drops cached summaries whenever a timesheet's entries change.
type CacheInvalidationWorker struct {
	cache  cache.SummaryCache
	logger *zap.Logger
}

// NewCacheInvalidationWorker creates the worker.
func NewCacheInvalidationWorker(summaries cache.SummaryCache, logger *zap.Logger) *CacheInvalidationWorker {
	return &CacheInvalidationWorker{cache: summaries, logger: logger}
}

// Start subscribes the worker to entry events.
func (w *CacheInvalidationWorker) Start(dispatcher events.Dispatcher) {
	if w == nil || dispatcher == nil || w.cache == nil {
		return
	}
	dispatcher.Subscribe(events.EventEntryCreated, w.handle)
	dispatcher.Subscribe(events.EventEntryUpdated, w.handle)
	dispatcher.Subscribe(events.EventEntryDeleted, w.handle)
}

func (w *CacheInvalidationWorker) handle(ctx context.Context, event events.Event) error {
	if err := w.cache.Invalidate(ctx, event.TimesheetID); err != nil {
		return err
	}
	w.logger.Debug("summary invalidated",
		zap.String("timesheet_id", event.TimesheetID),
		zap.String("event_type", string(event.Type)))
	return nil
}
