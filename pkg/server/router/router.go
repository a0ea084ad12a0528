package router

import (
	"errors"

	handlers "github.com/NeuralTrust/RuleGuard/pkg/handlers/http"
	"github.com/NeuralTrust/RuleGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	RootPath    = "/"
	HealthPath  = "/health"
	VersionPath = "/version"
	DocsPath    = "/docs/*"
	SwaggerPath = "/swagger.json"
)

var ErrMissingHandler = errors.New("missing handler in transport")

type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}

type ruleGuardRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
	swaggerFile         string
}

func NewRuleGuardRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
	swaggerFile string,
) ServerRouter {
	return &ruleGuardRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		swaggerFile:         swaggerFile,
	}
}

func (r *ruleGuardRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil || h.ModerateHandler == nil || h.AddRuleHandler == nil {
		return ErrMissingHandler
	}
	m := r.middlewareTransport

	for _, mw := range []middleware.Middleware{
		m.RequestIDMiddleware,
		m.PanicRecoverMiddleware,
		m.CORSMiddleware,
		m.MetricsMiddleware,
	} {
		if mw != nil {
			router.Use(mw.Middleware())
		}
	}

	router.Get(RootPath, h.StatusHandler.Handle)
	router.Get(HealthPath, h.HealthHandler.Handle)
	router.Get(VersionPath, h.GetVersionHandler.Handle)

	if r.swaggerFile != "" {
		router.Static(SwaggerPath, r.swaggerFile)
		router.Get(DocsPath, swagger.New(swagger.Config{URL: SwaggerPath}))
	}

	rules := router.Group("/rules", m.AuthMiddleware.Middleware())
	{
		rules.Post("/add-rule", h.AddRuleHandler.Handle)
		rules.Put("/update-rule/:rule_id", h.UpdateRuleHandler.Handle)
		rules.Delete("/delete-rule/:rule_id", h.DeleteRuleHandler.Handle)
		rules.Get("/rules/:user_id", h.ListRulesHandler.Handle)
		rules.Post("/moderate", h.ModerateHandler.Handle)
	}

	if m.AdminAuthMiddleware != nil && h.ListScopeRulesHandler != nil {
		admin := router.Group("/admin", m.AdminAuthMiddleware.Middleware())
		admin.Get("/scopes/:scope/rules", h.ListScopeRulesHandler.Handle)
	}

	return nil
}
