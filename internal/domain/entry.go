package domain

// Hour bounds for a single entry: MinEntryHours is exclusive, MaxEntryHours inclusive.
const (
	MinEntryHours = 0
	MaxEntryHours = 24
)

// DateLayout is the ISO calendar date format used for entry dates.
const DateLayout = "2006-01-02"

// TimesheetEntry is one logged work item.
type TimesheetEntry struct {
	ID          string
	TimesheetID string
	Date        string
	ProjectName string
	WorkType    string
	Description string
	Hours       float64
}

// EntryInput carries the fields of a new entry.
type EntryInput struct {
	Date        string
	ProjectName string
	WorkType    string
	Description string
	Hours       float64
}

// EntryPatch carries a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Date        *string
	ProjectName *string
	WorkType    *string
	Description *string
	Hours       *float64
}

// Apply returns a copy of entry with the patch merged in.
func (p EntryPatch) Apply(entry TimesheetEntry) TimesheetEntry {
	if p.Date != nil {
		entry.Date = *p.Date
	}
	if p.ProjectName != nil {
		entry.ProjectName = *p.ProjectName
	}
	if p.WorkType != nil {
		entry.WorkType = *p.WorkType
	}
	if p.Description != nil {
		entry.Description = *p.Description
	}
	if p.Hours != nil {
		entry.Hours = *p.Hours
	}
	return entry
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Date == nil && p.ProjectName == nil && p.WorkType == nil && p.Description == nil && p.Hours == nil
}
