package http

import (
	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/request"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type addRuleHandler struct {
	logger  *logrus.Logger
	service moderation.Service
}

func NewAddRuleHandler(logger *logrus.Logger, service moderation.Service) Handler {
	return &addRuleHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Add a moderation rule
// @Description Registers a rule for the user within the API key's scope
// @Tags Rules
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param rule body request.AddRuleRequest true "Rule to add"
// @Success 201 {object} response.MessageOutput
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 409 {object} map[string]interface{} "Rule already exists"
// @Failure 503 {object} map[string]interface{} "Rule store unavailable"
// @Router /rules/add-rule/ [post]
func (h *addRuleHandler) Handle(c *fiber.Ctx) error {
	var req request.AddRuleRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse add rule request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	t := tenantFrom(c, req.UserID)
	if _, err := h.service.AddRule(c.UserContext(), t, req.RuleID, req.RuleText); err != nil {
		return ruleErrorResponse(c, h.logger, t, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response.MessageOutput{
		Message: "Rule '" + req.RuleID + "' added successfully.",
	})
}
