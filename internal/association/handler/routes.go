package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AssociationHandler) {
	associations := app.Group("/api/v1/associations")
	associations.Get("/", h.List)
	associations.Post("/", h.Create)
	associations.Get("/:id", h.Get)
	associations.Patch("/:id", h.Update)
	associations.Delete("/:id", h.Delete)
}
