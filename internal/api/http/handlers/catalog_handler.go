package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timesheet-service/internal/api/dto"
	"github.com/spec-kit/timesheet-service/internal/directory"
)

// CatalogHandler lists the project names and work types offered by the entry form.
type CatalogHandler struct{}

// NewCatalogHandler constructs handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List handles GET /api/catalog.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.CatalogResponse{
		ProjectNames: directory.ProjectNames(),
		WorkTypes:    directory.WorkTypes(),
	}})
}
