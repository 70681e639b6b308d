package domain

import "strings"

// TimesheetStatus enumerates the stored states of a weekly timesheet.
type TimesheetStatus string

const (
	TimesheetStatusCompleted  TimesheetStatus = "COMPLETED"
	TimesheetStatusIncomplete TimesheetStatus = "INCOMPLETE"
	TimesheetStatusMissing    TimesheetStatus = "MISSING"
)

// StatusFilterAll disables status filtering on timesheet listings.
const StatusFilterAll = "all"

// ParseStatusFilter normalizes a status query value. ok is false when no
// filtering should be applied.
func ParseStatusFilter(raw string) (status TimesheetStatus, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, StatusFilterAll) {
		return "", false
	}
	return TimesheetStatus(strings.ToUpper(raw)), true
}

// Timesheet is a weekly record. Status and TotalHours are stored values and
// are not reconciled with the entries logged against the timesheet.
type Timesheet struct {
	ID         string
	WeekNumber int
	DateRange  string
	StartDate  string
	EndDate    string
	Status     TimesheetStatus
	TotalHours float64
}
