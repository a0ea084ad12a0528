package middleware

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

const forbiddenMessage = "Forbidden: Invalid or missing API key."

var openPaths = map[string]struct{}{
	"/":        {},
	"/health":  {},
	"/version": {},
}

type authMiddleware struct {
	logger *logrus.Logger
	scopes map[string]string
}

// NewAuthMiddleware gates requests on the X-API-Key header. Each accepted
// key carries the scope its rules live in.
func NewAuthMiddleware(logger *logrus.Logger, scopes map[string]string) Middleware {
	return &authMiddleware{
		logger: logger,
		scopes: scopes,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if isOpenPath(ctx.Path()) {
			return ctx.Next()
		}

		apiKey := utils.CopyString(ctx.Get(common.ApiKeyHeader))
		scope, ok := m.lookup(apiKey)
		if !ok {
			m.logger.WithFields(logrus.Fields{
				"path":       ctx.Path(),
				"key_given":  apiKey != "",
				"request_id": ctx.Locals(common.RequestIDContextKey),
			}).Debug("rejected request with invalid api key")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": forbiddenMessage})
		}

		ctx.Locals(common.ApiKeyContextKey, apiKey)
		ctx.Locals(common.ScopeContextKey, scope)
		c := context.WithValue(ctx.UserContext(), common.ApiKeyContextKey, apiKey)
		c = context.WithValue(c, common.ScopeContextKey, scope)
		ctx.SetUserContext(c)

		return ctx.Next()
	}
}

func (m *authMiddleware) lookup(apiKey string) (string, bool) {
	if apiKey == "" {
		return "", false
	}
	for key, scope := range m.scopes {
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return scope, true
		}
	}
	return "", false
}

func isOpenPath(path string) bool {
	if _, ok := openPaths[path]; ok {
		return true
	}
	return strings.HasPrefix(path, "/docs")
}
