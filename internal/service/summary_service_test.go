package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/directory"
	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/repository"
	"github.com/spec-kit/timesheet-service/internal/worker"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

type mapCache struct {
	items  map[string]domain.TimesheetSummary
	gens   map[string]int64
	getErr error
	sets   int
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string]domain.TimesheetSummary{}, gens: map[string]int64{}}
}

func (c *mapCache) Get(_ context.Context, id string) (*domain.TimesheetSummary, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	s, ok := c.items[id]
	if !ok {
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *mapCache) Generation(_ context.Context, id string) (int64, error) {
	return c.gens[id], nil
}

func (c *mapCache) Set(_ context.Context, s domain.TimesheetSummary, gen int64) error {
	if c.gens[s.Timesheet.ID] != gen {
		return nil
	}
	c.sets++
	c.items[s.Timesheet.ID] = s
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, id string) error {
	c.gens[id]++
	delete(c.items, id)
	return nil
}

// hookedEntryRepo runs afterList once, after the first List call has read
// the store but before its result is returned.
type hookedEntryRepo struct {
	repository.EntryRepository
	afterList func()
}

func (r *hookedEntryRepo) List(ctx context.Context, timesheetID string) ([]domain.TimesheetEntry, error) {
	entries, err := r.EntryRepository.List(ctx, timesheetID)
	if hook := r.afterList; hook != nil {
		r.afterList = nil
		hook()
	}
	return entries, err
}

func newSummaryService(c *mapCache) *SummaryService {
	return NewSummaryService(SummaryDependencies{
		Timesheets: newTimesheetService(),
		EntryRepo:  repository.NewMemoryEntryRepository(repository.UUIDGenerator{}, directory.Entries()),
		Cache:      c,
	})
}

func TestSummaryForSeededTimesheet(t *testing.T) {
	svc := newSummaryService(newMapCache())

	s, err := svc.Summary(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, 32.0, s.LoggedHours)
	assert.Equal(t, 8, s.EntryCount)
	assert.Equal(t, 40.0, s.WeeklyTargetHours)
	assert.Equal(t, 80.0, s.ProgressPercentage)
	assert.Equal(t, 40.0, s.Timesheet.TotalHours, "stored total is reported as-is")
	require.Len(t, s.Days, 3)
	assert.Equal(t, "2024-01-21", s.Days[0].Date)
	assert.Len(t, s.Days[1].Entries, 3)
}

func TestSummaryUsesCache(t *testing.T) {
	c := newMapCache()
	svc := newSummaryService(c)
	ctx := context.Background()

	_, err := svc.Summary(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 1, c.sets)

	_, err = svc.Summary(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 1, c.sets, "second call is served from cache")
}

func TestSummaryFallsBackOnCacheError(t *testing.T) {
	c := newMapCache()
	c.getErr = errors.New("redis down")
	svc := newSummaryService(c)

	s, err := svc.Summary(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, 32.0, s.LoggedHours)
}

func TestSummaryUnknownTimesheet(t *testing.T) {
	svc := newSummaryService(newMapCache())

	_, err := svc.Summary(context.Background(), "99")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSummaryEmptyTimesheet(t *testing.T) {
	svc := newSummaryService(newMapCache())

	s, err := svc.Summary(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.LoggedHours)
	assert.Equal(t, 0.0, s.ProgressPercentage)
	assert.Empty(t, s.Days)
	assert.Equal(t, domain.TimesheetStatusMissing, s.Timesheet.Status)
}

func TestSummaryWriteDuringComputationIsNotCached(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	d := events.NewInMemoryDispatcher()
	worker.NewCacheInvalidationWorker(c, zap.NewNop()).Start(d)

	repo := &hookedEntryRepo{EntryRepository: repository.NewMemoryEntryRepository(repository.UUIDGenerator{}, directory.Entries())}
	entries := NewEntryService(EntryDependencies{EntryRepo: repo, Dispatcher: d})
	svc := NewSummaryService(SummaryDependencies{Timesheets: newTimesheetService(), EntryRepo: repo, Cache: c})

	// The write lands after the summary read the entries but before it
	// stores the result.
	repo.afterList = func() {
		in := validInput()
		in.Hours = 8
		_, err := entries.Create(ctx, "1", "4", in)
		require.NoError(t, err)
	}
	s, err := svc.Summary(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 8, s.EntryCount)
	assert.Equal(t, 0, c.sets, "summary computed across an invalidation must not be stored")

	s, err = svc.Summary(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 9, s.EntryCount)
	assert.Equal(t, 40.0, s.LoggedHours)

	s, err = svc.Summary(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 40.0, s.LoggedHours)
	assert.Equal(t, 1, c.sets)
}
