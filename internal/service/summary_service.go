package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/aggregate"
	"github.com/spec-kit/timesheet-service/internal/cache"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/observability"
	"github.com/spec-kit/timesheet-service/internal/repository"
)

// SummaryService computes per-timesheet progress from logged entries.
type SummaryService struct {
	timesheets *TimesheetService
	entries    repository.EntryRepository
	cache      cache.SummaryCache
	target     float64
	logger     *zap.Logger
}

// SummaryDependencies bundles collaborators for the summary service.
type SummaryDependencies struct {
	Timesheets        *TimesheetService
	EntryRepo         repository.EntryRepository
	Cache             cache.SummaryCache
	WeeklyTargetHours float64
	Logger            *zap.Logger
}

// NewSummaryService constructs the service.
func NewSummaryService(deps SummaryDependencies) *SummaryService {
	c := deps.Cache
	if c == nil {
		c = cache.NoopSummaryCache{}
	}
	target := deps.WeeklyTargetHours
	if target <= 0 {
		target = aggregate.WeeklyTargetHours
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{
		timesheets: deps.Timesheets,
		entries:    deps.EntryRepo,
		cache:      c,
		target:     target,
		logger:     logger,
	}
}

// Summary returns the stored timesheet with hours and progress computed from
// its entries. Cache failures fall back to computing the summary.
func (s *SummaryService) Summary(ctx context.Context, timesheetID string) (*domain.TimesheetSummary, error) {
	ts, err := s.timesheets.Get(ctx, timesheetID)
	if err != nil {
		return nil, err
	}

	cached, ok, err := s.cache.Get(ctx, timesheetID)
	switch {
	case err != nil:
		observability.RecordSummaryCache("error")
		s.logger.Warn("summary cache read failed", zap.String("timesheet_id", timesheetID), zap.Error(err))
	case ok:
		observability.RecordSummaryCache("hit")
		return cached, nil
	default:
		observability.RecordSummaryCache("miss")
	}

	// The generation is read before the entries so that a write landing in
	// between makes Set a no-op.
	gen, genErr := s.cache.Generation(ctx, timesheetID)
	if genErr != nil {
		s.logger.Warn("summary cache generation read failed", zap.String("timesheet_id", timesheetID), zap.Error(genErr))
	}

	entries, err := s.entries.List(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	summary := aggregate.Summarize(*ts, entries, s.target)

	if genErr == nil {
		if err := s.cache.Set(ctx, summary, gen); err != nil {
			s.logger.Warn("summary cache write failed", zap.String("timesheet_id", timesheetID), zap.Error(err))
		}
	}
	return &summary, nil
}
