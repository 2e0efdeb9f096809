package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *ContactHandler) {
	api := app.Group("/api")
	api.Get("/", h.Root)
	api.Post("/contact-request", h.CreateContactRequest)
	api.Get("/contact-requests", h.ListContactRequests)
}
