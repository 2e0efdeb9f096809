package handler

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lsweb/lsweb-api/internal/auth/dto"
	"github.com/lsweb/lsweb-api/internal/auth/service"
)

const (
	msgInternalError = "Error interno del servidor"
	msgInvalidInput  = "Datos de entrada inválidos"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login answers invalid credentials with a 200 carrying success:false; only
// store or signing faults produce a 500.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": msgInvalidInput,
		})
	}

	resp, err := h.authService.Login(c.UserContext(), input)
	if err != nil {
		log.Printf("error: login failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": msgInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) InitAdmin(c *fiber.Ctx) error {
	created, err := h.authService.EnsureDefaultAdmin(c.UserContext())
	if err != nil {
		log.Printf("error: admin initialization failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": msgInternalError,
		})
	}

	if !created {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Admin user already exists",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Admin user created successfully",
	})
}
