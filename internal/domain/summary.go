package domain

// DayGroup holds the entries logged on one calendar date.
type DayGroup struct {
	Date    string
	Hours   float64
	Entries []TimesheetEntry
}

// TimesheetSummary combines the stored timesheet record with values computed
// from its entries.
type TimesheetSummary struct {
	Timesheet          Timesheet
	EntryCount         int
	LoggedHours        float64
	WeeklyTargetHours  float64
	ProgressPercentage float64
	Days               []DayGroup
}
