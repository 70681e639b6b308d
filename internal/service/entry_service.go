package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/timesheet-service/internal/domain"
	"github.com/spec-kit/timesheet-service/internal/events"
	"github.com/spec-kit/timesheet-service/internal/observability"
	"github.com/spec-kit/timesheet-service/internal/repository"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

// EntryService validates entry writes and forwards them to the store.
type EntryService struct {
	entries    repository.EntryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// EntryDependencies bundles collaborators for the entry service.
type EntryDependencies struct {
	EntryRepo  repository.EntryRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewEntryService constructs the service.
func NewEntryService(deps EntryDependencies) *EntryService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntryService{
		entries:    deps.EntryRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// List returns the entries of a timesheet in insertion order.
func (s *EntryService) List(ctx context.Context, timesheetID string) ([]domain.TimesheetEntry, error) {
	return s.entries.List(ctx, timesheetID)
}

// Create validates input and appends a new entry.
func (s *EntryService) Create(ctx context.Context, actorID, timesheetID string, input domain.EntryInput) (*domain.TimesheetEntry, error) {
	input = normalizeInput(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, timesheetID, input)
	if err != nil {
		return nil, err
	}
	observability.RecordEntryMutation("create")
	s.publishEvent(ctx, events.EventEntryCreated, actorID, timesheetID, entry.ID)
	return entry, nil
}

// Update merges the supplied fields into an existing entry.
func (s *EntryService) Update(ctx context.Context, actorID, timesheetID, entryID string, patch domain.EntryPatch) (*domain.TimesheetEntry, error) {
	patch = normalizePatch(patch)
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	entry, err := s.entries.Update(ctx, timesheetID, entryID, patch)
	if err != nil {
		return nil, mapStoreError(err, timesheetID, entryID)
	}
	observability.RecordEntryMutation("update")
	s.publishEvent(ctx, events.EventEntryUpdated, actorID, timesheetID, entryID)
	return entry, nil
}

// Delete removes an entry. Unknown entry ids in an existing timesheet are ignored.
func (s *EntryService) Delete(ctx context.Context, actorID, timesheetID, entryID string) error {
	if err := s.entries.Delete(ctx, timesheetID, entryID); err != nil {
		return mapStoreError(err, timesheetID, entryID)
	}
	observability.RecordEntryMutation("delete")
	s.publishEvent(ctx, events.EventEntryDeleted, actorID, timesheetID, entryID)
	return nil
}

func (s *EntryService) publishEvent(ctx context.Context, eventType events.EventType, actorID, timesheetID, entryID string) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		TimesheetID: timesheetID,
		EntryID:     entryID,
		ActorID:     actorID,
		Timestamp:   s.now().UTC(),
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("entry event handler failed",
			zap.String("event_type", string(eventType)),
			zap.String("timesheet_id", timesheetID),
			zap.Error(err))
	}
}

func mapStoreError(err error, timesheetID, entryID string) error {
	switch {
	case errors.Is(err, repository.ErrTimesheetNotFound):
		return apperrors.NewNotFound("timesheet", map[string]any{"timesheet_id": timesheetID})
	case errors.Is(err, repository.ErrEntryNotFound):
		return apperrors.NewNotFound("entry", map[string]any{"timesheet_id": timesheetID, "entry_id": entryID})
	default:
		return err
	}
}
