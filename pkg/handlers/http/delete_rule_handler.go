package http

import (
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type deleteRuleHandler struct {
	logger  *logrus.Logger
	service moderation.Service
}

func NewDeleteRuleHandler(logger *logrus.Logger, service moderation.Service) Handler {
	return &deleteRuleHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Delete a moderation rule
// @Tags Rules
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param rule_id path string true "Rule ID"
// @Param user_id query string true "Owner of the rule"
// @Success 200 {object} response.MessageOutput
// @Failure 400 {object} map[string]interface{} "Missing user_id"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 503 {object} map[string]interface{} "Rule store unavailable"
// @Router /rules/delete-rule/{rule_id}/ [delete]
func (h *deleteRuleHandler) Handle(c *fiber.Ctx) error {
	ruleID := utils.CopyString(c.Params("rule_id"))
	userID := utils.CopyString(c.Query("user_id"))
	if ruleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "rule_id is required"})
	}
	if strings.TrimSpace(userID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	t := tenantFrom(c, userID)
	if err := h.service.DeleteRule(c.UserContext(), t, ruleID); err != nil {
		return ruleErrorResponse(c, h.logger, t, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.MessageOutput{
		Message: "Rule '" + ruleID + "' deleted successfully.",
	})
}
