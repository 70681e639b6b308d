package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spec-kit/timesheet-service/internal/domain"
)

// Hours accepts either a JSON number or a numeric string. Strings that do
// not parse decode to NaN and are rejected by entry validation.
type Hours float64

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hours) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			v = math.NaN()
		}
		*h = Hours(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*h = Hours(v)
	return nil
}

// CreateEntryRequest payload.
type CreateEntryRequest struct {
	Date        string `json:"date"`
	ProjectName string `json:"projectName"`
	WorkType    string `json:"workType"`
	Description string `json:"description"`
	Hours       Hours  `json:"hours"`
}

// UpdateEntryRequest payload. Omitted fields keep their stored value.
type UpdateEntryRequest struct {
	EntryID     string  `json:"entryId"`
	Date        *string `json:"date"`
	ProjectName *string `json:"projectName"`
	WorkType    *string `json:"workType"`
	Description *string `json:"description"`
	Hours       *Hours  `json:"hours"`
}

// EntryResponse is a stored entry.
type EntryResponse struct {
	ID          string  `json:"id"`
	TimesheetID string  `json:"timesheetId"`
	Date        string  `json:"date"`
	ProjectName string  `json:"projectName"`
	WorkType    string  `json:"workType"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

// Input converts the request to a domain input.
func (r CreateEntryRequest) Input() domain.EntryInput {
	return domain.EntryInput{
		Date:        r.Date,
		ProjectName: r.ProjectName,
		WorkType:    r.WorkType,
		Description: r.Description,
		Hours:       float64(r.Hours),
	}
}

// Patch converts the request to a domain patch.
func (r UpdateEntryRequest) Patch() domain.EntryPatch {
	patch := domain.EntryPatch{
		Date:        r.Date,
		ProjectName: r.ProjectName,
		WorkType:    r.WorkType,
		Description: r.Description,
	}
	if r.Hours != nil {
		h := float64(*r.Hours)
		patch.Hours = &h
	}
	return patch
}

// NewEntryResponse maps a domain entry.
func NewEntryResponse(e domain.TimesheetEntry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		TimesheetID: e.TimesheetID,
		Date:        e.Date,
		ProjectName: e.ProjectName,
		WorkType:    e.WorkType,
		Description: e.Description,
		Hours:       e.Hours,
	}
}

// NewEntryResponses maps a list, never returning nil.
func NewEntryResponses(list []domain.TimesheetEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, NewEntryResponse(e))
	}
	return out
}
