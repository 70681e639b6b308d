package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/auth"
	"github.com/spec-kit/timesheet-service/internal/service"
	apperrors "github.com/spec-kit/timesheet-service/pkg/util"
)

// EntriesHandler manages the entries of a timesheet.
type EntriesHandler struct {
	entries *service.EntryService
}

// NewEntriesHandler constructs handler.
func NewEntriesHandler(entries *service.EntryService) *EntriesHandler {
	return &EntriesHandler{entries: entries}
}

// List handles GET /api/timesheets/:id/entries.
func (h *EntriesHandler) List(c *fiber.Ctx) error {
	list, err := h.entries.List(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEntryResponses(list)})
}

// Create handles POST /api/timesheets/:id/entries.
func (h *EntriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	entry, err := h.entries.Create(c.UserContext(), actorID(c), c.Params("id"), req.Input())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEntryResponse(*entry)})
}

// Update handles PUT /api/timesheets/:id/entries. The entry id travels in the body.
func (h *EntriesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EntryID == "" {
		return apperrors.NewValidationError("Entry ID required", nil)
	}

	entry, err := h.entries.Update(c.UserContext(), actorID(c), c.Params("id"), req.EntryID, req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEntryResponse(*entry)})
}

// Delete handles DELETE /api/timesheets/:id/entries?entryId=.
func (h *EntriesHandler) Delete(c *fiber.Ctx) error {
	entryID := c.Query("entryId")
	if entryID == "" {
		return apperrors.NewValidationError("Entry ID required", nil)
	}

	if err := h.entries.Delete(c.UserContext(), actorID(c), c.Params("id"), entryID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Entry deleted successfully"})
}

func actorID(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok {
		return principal.User.ID
	}
	return ""
}
