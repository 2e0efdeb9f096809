package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lsweb/lsweb-api/internal/contact/dto"
	"github.com/lsweb/lsweb-api/internal/contact/service"
	apierrors "github.com/lsweb/lsweb-api/internal/errors"
)

const (
	msgInternalError = "Error interno del servidor"
	msgInvalidInput  = "Datos de entrada inválidos"
)

type ContactHandler struct {
	intakeService *service.IntakeService
}

func NewContactHandler(intakeService *service.IntakeService) *ContactHandler {
	return &ContactHandler{intakeService: intakeService}
}

func (h *ContactHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "LS WEB API - Ready",
	})
}

func (h *ContactHandler) CreateContactRequest(c *fiber.Ctx) error {
	var input dto.ContactRequestCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": msgInvalidInput,
		})
	}

	resp, err := h.intakeService.Submit(c.UserContext(), input)
	if err != nil {
		var verr *apierrors.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": msgInvalidInput,
				"fields":  verr.Fields,
			})
		}

		// Details stay in the log; clients only see the generic message.
		log.Printf("error: contact request submission failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": msgInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ContactHandler) ListContactRequests(c *fiber.Ctx) error {
	requests, err := h.intakeService.List(c.UserContext())
	if err != nil {
		log.Printf("error: listing contact requests failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": msgInternalError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}
