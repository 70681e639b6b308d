package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

var (
	// ErrTimesheetNotFound means no entry collection exists for the timesheet.
	ErrTimesheetNotFound = errors.New("timesheet not found")
	// ErrEntryNotFound means the collection exists but holds no such entry.
	ErrEntryNotFound = errors.New("entry not found")
)

// EntryRepository stores timesheet entries grouped by timesheet id.
//
// A timesheet's collection comes into existence on the first Create. Update
// and Delete fail with ErrTimesheetNotFound until then. Delete of an unknown
// entry id inside an existing collection is a no-op.
type EntryRepository interface {
	List(ctx context.Context, timesheetID string) ([]domain.TimesheetEntry, error)
	Create(ctx context.Context, timesheetID string, input domain.EntryInput) (*domain.TimesheetEntry, error)
	Update(ctx context.Context, timesheetID, entryID string, patch domain.EntryPatch) (*domain.TimesheetEntry, error)
	Delete(ctx context.Context, timesheetID, entryID string) error
}

// IDGenerator produces entry identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 identifiers.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewID implements IDGenerator.
func (f IDGeneratorFunc) NewID() string {
	return f()
}
