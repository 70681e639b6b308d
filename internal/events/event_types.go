package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEntryCreated EventType = "entry_created"
	EventEntryUpdated EventType = "entry_updated"
	EventEntryDeleted EventType = "entry_deleted"
)

// Event represents a change to a timesheet's entries.
type Event struct {
	ID          string
	Type        EventType
	TimesheetID string
	EntryID     string
	ActorID     string
	Timestamp   time.Time
}
