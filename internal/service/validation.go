package service

import (
	"html"
	"math"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/spec-kit/timesheet-service/internal/domain"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

const (
	msgDateRequired        = "Date is required"
	msgDateFormat          = "Date must be in YYYY-MM-DD format"
	msgProjectRequired     = "Project name is required"
	msgWorkTypeRequired    = "Work type is required"
	msgDescriptionRequired = "Description is required"
	msgHoursRange          = "Hours must be between 0 and 24"
)

var descriptionPolicy = bluemonday.StrictPolicy()

// sanitizeText trims s and strips any markup from it.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(descriptionPolicy.Sanitize(s)))
}

func normalizeInput(in domain.EntryInput) domain.EntryInput {
	in.Date = strings.TrimSpace(in.Date)
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	in.WorkType = strings.TrimSpace(in.WorkType)
	in.Description = sanitizeText(in.Description)
	return in
}

func normalizePatch(p domain.EntryPatch) domain.EntryPatch {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	p.Date = trim(p.Date)
	p.ProjectName = trim(p.ProjectName)
	p.WorkType = trim(p.WorkType)
	if p.Description != nil {
		v := sanitizeText(*p.Description)
		p.Description = &v
	}
	return p
}

// validateInput checks a normalized new entry.
func validateInput(in domain.EntryInput) error {
	fields := map[string]any{}
	checkDate(fields, in.Date)
	checkRequired(fields, "projectName", in.ProjectName, msgProjectRequired)
	checkRequired(fields, "workType", in.WorkType, msgWorkTypeRequired)
	checkRequired(fields, "description", in.Description, msgDescriptionRequired)
	checkHours(fields, in.Hours)
	return validationResult(fields)
}

// validatePatch checks only the fields a normalized patch supplies.
func validatePatch(p domain.EntryPatch) error {
	fields := map[string]any{}
	if p.Date != nil {
		checkDate(fields, *p.Date)
	}
	if p.ProjectName != nil {
		checkRequired(fields, "projectName", *p.ProjectName, msgProjectRequired)
	}
	if p.WorkType != nil {
		checkRequired(fields, "workType", *p.WorkType, msgWorkTypeRequired)
	}
	if p.Description != nil {
		checkRequired(fields, "description", *p.Description, msgDescriptionRequired)
	}
	if p.Hours != nil {
		checkHours(fields, *p.Hours)
	}
	return validationResult(fields)
}

func checkRequired(fields map[string]any, name, value, msg string) {
	if value == "" {
		fields[name] = msg
	}
}

func checkDate(fields map[string]any, value string) {
	if value == "" {
		fields["date"] = msgDateRequired
		return
	}
	if _, err := time.Parse(domain.DateLayout, value); err != nil {
		fields["date"] = msgDateFormat
	}
}

func checkHours(fields map[string]any, hours float64) {
	if math.IsNaN(hours) || hours <= domain.MinEntryHours || hours > domain.MaxEntryHours {
		fields["hours"] = msgHoursRange
	}
}

func validationResult(fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return apperrors.NewValidationError("invalid entry", map[string]any{"fields": fields})
}
