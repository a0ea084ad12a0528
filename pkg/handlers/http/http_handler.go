package http

import (
	"errors"

	"github.com/NeuralTrust/RuleGuard/pkg/common"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/rule"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Status
	StatusHandler     Handler
	HealthHandler     Handler
	GetVersionHandler Handler

	// Rules
	AddRuleHandler    Handler
	UpdateRuleHandler Handler
	DeleteRuleHandler Handler
	ListRulesHandler  Handler

	// Moderation
	ModerateHandler Handler

	// Admin
	ListScopeRulesHandler Handler
}

// tenantFrom pairs the caller supplied user with the scope bound to the
// API key that authenticated the request.
func tenantFrom(c *fiber.Ctx, userID string) tenant.Key {
	scope, _ := c.Locals(common.ScopeContextKey).(string)
	return tenant.New(userID, scope)
}

func ruleErrorResponse(c *fiber.Ctx, logger *logrus.Logger, t tenant.Key, err error) error {
	switch {
	case errors.Is(err, rule.ErrDuplicateRule):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, rule.ErrRuleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, rule.ErrStoreUnavailable):
		logger.WithError(err).WithField("tenant", t.String()).Error("rule store unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": rule.ErrStoreUnavailable.Error()})
	default:
		logger.WithError(err).WithField("tenant", t.String()).Error("rule operation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
