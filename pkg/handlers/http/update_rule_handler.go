package http

import (
	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type updateRuleHandler struct {
	logger  *logrus.Logger
	service moderation.Service
}

func NewUpdateRuleHandler(logger *logrus.Logger, service moderation.Service) Handler {
	return &updateRuleHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Update a moderation rule
// @Description Replaces the text of a rule owned by the user
// @Tags Rules
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param rule_id path string true "Rule ID"
// @Param rule body request.UpdateRuleRequest true "New rule text"
// @Success 200 {object} response.MessageOutput
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Rule not found"
// @Failure 503 {object} map[string]interface{} "Rule store unavailable"
// @Router /rules/update-rule/{rule_id}/ [put]
func (h *updateRuleHandler) Handle(c *fiber.Ctx) error {
	ruleID := utils.CopyString(c.Params("rule_id"))
	if ruleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "rule_id is required"})
	}

	var req request.UpdateRuleRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse update rule request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	t := tenantFrom(c, req.UserID)
	if _, err := h.service.UpdateRule(c.UserContext(), t, ruleID, req.RuleText); err != nil {
		return ruleErrorResponse(c, h.logger, t, err)
	}

	return c.Status(fiber.StatusOK).JSON(response.MessageOutput{
		Message: "Rule '" + ruleID + "' updated successfully.",
	})
}
