package http

import (
	"github.com/NeuralTrust/RuleGuard/pkg/version"
	"github.com/gofiber/fiber/v2"
)

type getVersionHandler struct{}

func NewGetVersionHandler() Handler {
	return &getVersionHandler{}
}

// Handle @Summary Get RuleGuard version
// @Tags Status
// @Produce json
// @Success 200 {object} version.Info
// @Router /version [get]
func (h *getVersionHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(version.GetInfo())
}
