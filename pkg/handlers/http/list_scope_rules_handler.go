package http

import (
	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/domain/tenant"
	"github.com/NeuralTrust/RuleGuard/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

// GlobalScopeParam addresses the legacy global scope in admin routes.
const GlobalScopeParam = "~"

type listScopeRulesHandler struct {
	logger  *logrus.Logger
	service moderation.Service
}

func NewListScopeRulesHandler(logger *logrus.Logger, service moderation.Service) Handler {
	return &listScopeRulesHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List every rule in a scope
// @Description Admin view across all owners of an API-key scope. Use ~ for the global scope.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param scope path string true "Scope"
// @Success 200 {object} response.ScopeRulesOutput
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 503 {object} map[string]interface{} "Rule store unavailable"
// @Router /admin/scopes/{scope}/rules [get]
func (h *listScopeRulesHandler) Handle(c *fiber.Ctx) error {
	scope := utils.CopyString(c.Params("scope"))
	if scope == GlobalScopeParam {
		scope = ""
	}

	rules, err := h.service.ListScopeRules(c.UserContext(), scope)
	if err != nil {
		return ruleErrorResponse(c, h.logger, tenant.New("*", scope), err)
	}

	return c.Status(fiber.StatusOK).JSON(response.ScopeRulesOutput{
		Scope: scope,
		Rules: response.NewRuleOutputs(rules),
	})
}
