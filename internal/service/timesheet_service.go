package service

import (
	"context"
	"errors"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/repository"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// TimesheetFilter describes a listing request. Status is the raw query value.
type TimesheetFilter struct {
	Status string
	Page   int
	Limit  int
}

// TimesheetPage is one window of a filtered listing.
type TimesheetPage struct {
	Items      []domain.Timesheet
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// TimesheetService answers timesheet queries.
type TimesheetService struct {
	timesheets repository.TimesheetRepository
}

// NewTimesheetService constructs the service.
func NewTimesheetService(timesheets repository.TimesheetRepository) *TimesheetService {
	return &TimesheetService{timesheets: timesheets}
}

// List filters timesheets by status and returns the requested page.
func (s *TimesheetService) List(ctx context.Context, filter TimesheetFilter) (TimesheetPage, error) {
	all, err := s.timesheets.List(ctx)
	if err != nil {
		return TimesheetPage{}, err
	}

	matched := all
	if status, ok := domain.ParseStatusFilter(filter.Status); ok {
		matched = make([]domain.Timesheet, 0, len(all))
		for _, ts := range all {
			if ts.Status == status {
				matched = append(matched, ts)
			}
		}
	}

	page, limit := filter.Page, filter.Limit
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	return TimesheetPage{
		Items:      paginate(matched, page, limit),
		Page:       page,
		Limit:      limit,
		Total:      len(matched),
		TotalPages: totalPages(len(matched), limit),
	}, nil
}

// Get returns a single timesheet.
func (s *TimesheetService) Get(ctx context.Context, id string) (*domain.Timesheet, error) {
	ts, err := s.timesheets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTimesheetNotFound) {
			return nil, apperrors.NewNotFound("timesheet", map[string]any{"timesheet_id": id})
		}
		return nil, err
	}
	return ts, nil
}

// paginate returns items[(page-1)*limit : page*limit], clamped to the slice.
// page and limit must be positive.
func paginate[T any](items []T, page, limit int) []T {
	if page-1 >= totalPages(len(items), limit) {
		return []T{}
	}
	start := (page - 1) * limit
	end := len(items)
	if limit < end-start {
		end = start + limit
	}
	return append([]T{}, items[start:end]...)
}

// totalPages is ceil(total/limit) without the overflow of (total+limit-1).
func totalPages(total, limit int) int {
	n := total / limit
	if total%limit != 0 {
		n++
	}
	return n
}
