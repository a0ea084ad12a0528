package middleware

import (
	"context"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/common"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const bearerScheme = "bearer"

type adminAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

// NewAdminAuthMiddleware guards operator routes with an HS256 bearer token
// issued by `ruleguard token`. Decoded claims are exposed under
// common.AdminClaimsKey.
func NewAdminAuthMiddleware(logger *logrus.Logger, jwtManager jwt.Manager) Middleware {
	return &adminAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return unauthorized(c, "Bearer token required")
		}

		claims, err := m.jwtManager.DecodeToken(token)
		if err != nil {
			m.logger.WithError(err).WithField("path", c.Path()).Warn("rejected admin token")
			return unauthorized(c, "Invalid token")
		}

		c.Locals(common.AdminClaimsKey, claims)
		c.SetUserContext(context.WithValue(c.UserContext(), common.AdminClaimsKey, claims))
		m.logger.WithFields(logrus.Fields{
			"subject": claims.Subject,
			"path":    c.Path(),
		}).Debug("admin request authorized")
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *fiber.Ctx, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="ruleguard-admin"`)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
