package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the organizer management endpoints behind the given
// admin guard.
func RegisterRoutes(app *fiber.App, h *OrganizerHandler, requireAdmin fiber.Handler) {
	organizers := app.Group("/api/v1/organizers", requireAdmin)
	organizers.Get("/", h.List)
	organizers.Get("/:id", h.Get)
	organizers.Patch("/:id", h.Update)
	organizers.Delete("/:id", h.Delete)
}
