package repository

import (
	"context"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// TimesheetRepository exposes the read-only timesheet list.
type TimesheetRepository interface {
	List(ctx context.Context) ([]domain.Timesheet, error)
	GetByID(ctx context.Context, id string) (*domain.Timesheet, error)
}

type staticTimesheetRepository struct {
	timesheets []domain.Timesheet
}

// NewStaticTimesheetRepository serves a fixed list of timesheets in the given order.
func NewStaticTimesheetRepository(timesheets []domain.Timesheet) TimesheetRepository {
	return &staticTimesheetRepository{timesheets: append([]domain.Timesheet(nil), timesheets...)}
}

func (r *staticTimesheetRepository) List(_ context.Context) ([]domain.Timesheet, error) {
	return append([]domain.Timesheet{}, r.timesheets...), nil
}

func (r *staticTimesheetRepository) GetByID(_ context.Context, id string) (*domain.Timesheet, error) {
	for _, ts := range r.timesheets {
		if ts.ID == id {
			found := ts
			return &found, nil
		}
	}
	return nil, ErrTimesheetNotFound
}
