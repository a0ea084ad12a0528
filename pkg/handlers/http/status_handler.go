package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type statusHandler struct{}

func NewStatusHandler() Handler {
	return &statusHandler{}
}

// Handle @Summary API status
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *statusHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "API is running"})
}

type healthHandler struct{}

func NewHealthHandler() Handler {
	return &healthHandler{}
}

func (h *healthHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
