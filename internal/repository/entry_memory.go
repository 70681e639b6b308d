package repository

import (
	"context"
	"sync"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

type memoryEntryRepository struct {
	mu      sync.RWMutex
	ids     IDGenerator
	entries map[string][]domain.TimesheetEntry
}

// NewMemoryEntryRepository returns an in-process store primed with seed.
// The seed map is copied; callers may keep using it.
func NewMemoryEntryRepository(ids IDGenerator, seed map[string][]domain.TimesheetEntry) EntryRepository {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	entries := make(map[string][]domain.TimesheetEntry, len(seed))
	for id, list := range seed {
		entries[id] = append([]domain.TimesheetEntry(nil), list...)
	}
	return &memoryEntryRepository{ids: ids, entries: entries}
}

func (r *memoryEntryRepository) List(_ context.Context, timesheetID string) ([]domain.TimesheetEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.TimesheetEntry{}, r.entries[timesheetID]...), nil
}

func (r *memoryEntryRepository) Create(_ context.Context, timesheetID string, input domain.EntryInput) (*domain.TimesheetEntry, error) {
	entry := domain.TimesheetEntry{
		ID:          r.ids.NewID(),
		TimesheetID: timesheetID,
		Date:        input.Date,
		ProjectName: input.ProjectName,
		WorkType:    input.WorkType,
		Description: input.Description,
		Hours:       input.Hours,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[timesheetID] = append(r.entries[timesheetID], entry)
	return &entry, nil
}

func (r *memoryEntryRepository) Update(_ context.Context, timesheetID, entryID string, patch domain.EntryPatch) (*domain.TimesheetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.entries[timesheetID]
	if !ok {
		return nil, ErrTimesheetNotFound
	}
	for i := range list {
		if list[i].ID == entryID {
			list[i] = patch.Apply(list[i])
			updated := list[i]
			return &updated, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (r *memoryEntryRepository) Delete(_ context.Context, timesheetID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.entries[timesheetID]
	if !ok {
		return ErrTimesheetNotFound
	}
	kept := make([]domain.TimesheetEntry, 0, len(list))
	for _, e := range list {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	r.entries[timesheetID] = kept
	return nil
}
