package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/timesheet-service/internal/api/http/handlers"
	"github.com/spec-kit/timesheet-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Timesheets     *handlers.TimesheetsHandler
	Entries        *handlers.EntriesHandler
	Catalog        *handlers.CatalogHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Post("/login", cfg.Auth.Login)

	requireAuth := cfg.AuthMiddleware.Handle
	api.Get("/me", requireAuth, cfg.Auth.Me)
	api.Get("/catalog", requireAuth, cfg.Catalog.List)

	timesheets := api.Group("/timesheets", requireAuth)
	timesheets.Get("", cfg.Timesheets.List)
	timesheets.Get("/:id", cfg.Timesheets.Get)
	timesheets.Get("/:id/summary", cfg.Timesheets.Summary)
	timesheets.Get("/:id/entries", cfg.Entries.List)
	timesheets.Post("/:id/entries", cfg.Entries.Create)
	timesheets.Put("/:id/entries", cfg.Entries.Update)
	timesheets.Delete("/:id/entries", cfg.Entries.Delete)
}
