package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	api := app.Group("/api")
	api.Post("/login", h.Login)
	api.Post("/init-admin", h.InitAdmin)
}
