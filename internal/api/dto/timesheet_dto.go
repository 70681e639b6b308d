package dto

import (
	"github.com/spec-kit/timesheet-service/internal/aggregate"
	"github.com/spec-kit/timesheet-service/internal/domain"
)

// TimesheetResponse is a weekly timesheet.
type TimesheetResponse struct {
	ID         string                 `json:"id"`
	WeekNumber int                    `json:"weekNumber"`
	DateRange  string                 `json:"dateRange"`
	StartDate  string                 `json:"startDate"`
	EndDate    string                 `json:"endDate"`
	Status     domain.TimesheetStatus `json:"status"`
	TotalHours float64                `json:"totalHours"`
}

// PaginationResponse describes the listing window.
type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// DayGroupResponse lists the entries of one date.
type DayGroupResponse struct {
	Date    string          `json:"date"`
	Hours   float64         `json:"hours"`
	Entries []EntryResponse `json:"entries"`
}

// SummaryResponse reports logged hours and progress for a timesheet.
type SummaryResponse struct {
	Timesheet          TimesheetResponse  `json:"timesheet"`
	EntryCount         int                `json:"entryCount"`
	LoggedHours        float64            `json:"loggedHours"`
	WeeklyTargetHours  float64            `json:"weeklyTargetHours"`
	ProgressPercentage float64            `json:"progressPercentage"`
	ProgressLabel      string             `json:"progressLabel"`
	Days               []DayGroupResponse `json:"days"`
}

// CatalogResponse lists the selectable project names and work types.
type CatalogResponse struct {
	ProjectNames []string `json:"projectNames"`
	WorkTypes    []string `json:"workTypes"`
}

// NewTimesheetResponse maps a domain timesheet.
func NewTimesheetResponse(ts domain.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		ID:         ts.ID,
		WeekNumber: ts.WeekNumber,
		DateRange:  ts.DateRange,
		StartDate:  ts.StartDate,
		EndDate:    ts.EndDate,
		Status:     ts.Status,
		TotalHours: ts.TotalHours,
	}
}

// NewTimesheetResponses maps a list, never returning nil.
func NewTimesheetResponses(list []domain.Timesheet) []TimesheetResponse {
	out := make([]TimesheetResponse, 0, len(list))
	for _, ts := range list {
		out = append(out, NewTimesheetResponse(ts))
	}
	return out
}

// NewSummaryResponse maps a computed summary.
func NewSummaryResponse(s domain.TimesheetSummary) SummaryResponse {
	days := make([]DayGroupResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, DayGroupResponse{
			Date:    d.Date,
			Hours:   d.Hours,
			Entries: NewEntryResponses(d.Entries),
		})
	}
	return SummaryResponse{
		Timesheet:          NewTimesheetResponse(s.Timesheet),
		EntryCount:         s.EntryCount,
		LoggedHours:        s.LoggedHours,
		WeeklyTargetHours:  s.WeeklyTargetHours,
		ProgressPercentage: s.ProgressPercentage,
		ProgressLabel:      aggregate.FormatPercentage(s.ProgressPercentage),
		Days:               days,
	}
}
