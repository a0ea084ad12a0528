package http

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type listRulesHandler struct {
	logger  *logrus.Logger
	service moderation.Service
}

func NewListRulesHandler(logger *logrus.Logger, service moderation.Service) Handler {
	return &listRulesHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List a user's rules
// @Tags Rules
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param user_id path string true "User ID"
// @Success 200 {object} response.ListRulesOutput
// @Failure 503 {object} map[string]interface{} "Rule store unavailable"
// @Router /rules/rules/{user_id}/ [get]
func (h *listRulesHandler) Handle(c *fiber.Ctx) error {
	userID := utils.CopyString(c.Params("user_id"))
	if strings.TrimSpace(userID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	t := tenantFrom(c, userID)
	rules, err := h.service.ListRules(c.UserContext(), t)
	if err != nil {
		return ruleErrorResponse(c, h.logger, t, err)
	}

	message := fmt.Sprintf("Found %d rules for user '%s'.", len(rules), userID)
	if len(rules) == 0 {
		message = fmt.Sprintf("No rules found for user '%s'.", userID)
	}
	return c.Status(fiber.StatusOK).JSON(response.ListRulesOutput{
		Rules:   response.NewRuleOutputs(rules),
		Message: message,
	})
}
