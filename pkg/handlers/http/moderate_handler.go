package http

import (
	"context"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type moderateHandler struct {
	logger  *logrus.Logger
	service moderation.Service
	timeout time.Duration
}

// NewModerateHandler bounds every moderation by timeout. The deadline is
// applied here, outside the pipeline, through the request context.
func NewModerateHandler(logger *logrus.Logger, service moderation.Service, timeout time.Duration) Handler {
	return &moderateHandler{
		logger:  logger,
		service: service,
		timeout: timeout,
	}
}

// Handle @Summary Moderate text
// @Description Judges text against the user's most relevant rules. An undecided verdict
// @Description returns 502 with is_violation null and the failure reason.
// @Tags Moderation
// @Accept json
// @Produce json
// @Param X-API-Key header string true "API key"
// @Param request body request.ModerateRequest true "Text to moderate"
// @Success 200 {object} map[string]interface{} "is_violation and reason"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "Verdict could not be reached"
// @Router /rules/moderate/ [post]
func (h *moderateHandler) Handle(c *fiber.Ctx) error {
	var req request.ModerateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Debug("failed to parse moderate request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result := h.service.Moderate(ctx, tenantFrom(c, req.UserID), req.TextToModerate)
	if !result.Verdict.IsKnown() {
		return c.Status(fiber.StatusBadGateway).JSON(result)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
