package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/service"
)

// TimesheetsHandler serves timesheet listings and summaries.
type TimesheetsHandler struct {
	timesheets *service.TimesheetService
	summaries  *service.SummaryService
}

// NewTimesheetsHandler constructs handler.
func NewTimesheetsHandler(timesheets *service.TimesheetService, summaries *service.SummaryService) *TimesheetsHandler {
	return &TimesheetsHandler{timesheets: timesheets, summaries: summaries}
}

// List handles GET /api/timesheets?status=&page=&limit=.
func (h *TimesheetsHandler) List(c *fiber.Ctx) error {
	result, err := h.timesheets.List(c.UserContext(), service.TimesheetFilter{
		Status: c.Query("status"),
		Page:   parseInt(c.Query("page"), service.DefaultPage),
		Limit:  parseInt(c.Query("limit"), service.DefaultLimit),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.NewTimesheetResponses(result.Items),
		"pagination": dto.PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /api/timesheets/:id.
func (h *TimesheetsHandler) Get(c *fiber.Ctx) error {
	ts, err := h.timesheets.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimesheetResponse(*ts)})
}

// Summary handles GET /api/timesheets/:id/summary.
func (h *TimesheetsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.summaries.Summary(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSummaryResponse(*summary)})
}

// parseInt returns def for absent, non-numeric or non-positive values.
func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
