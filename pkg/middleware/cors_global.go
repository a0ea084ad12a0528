package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type corsGlobalMiddleware struct {
	allowOrigins []string
	allowMethods string
	allowHeaders string
}

// NewCORSGlobalMiddleware stamps CORS headers on every response and answers
// preflight requests before authentication runs.
func NewCORSGlobalMiddleware(allowOrigins, allowMethods, allowHeaders []string) Middleware {
	return &corsGlobalMiddleware{
		allowOrigins: allowOrigins,
		allowMethods: strings.Join(allowMethods, ", "),
		allowHeaders: strings.Join(allowHeaders, ", "),
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin, ok := m.allowedOrigin(c.Get(fiber.HeaderOrigin))
		if ok {
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
			c.Set(fiber.HeaderAccessControlAllowMethods, m.allowMethods)
			c.Set(fiber.HeaderAccessControlAllowHeaders, m.allowHeaders)
			if origin != "*" {
				c.Vary(fiber.HeaderOrigin)
			}
		}

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}

func (m *corsGlobalMiddleware) allowedOrigin(origin string) (string, bool) {
	for _, o := range m.allowOrigins {
		if o == "*" {
			return "*", true
		}
		if origin != "" && strings.EqualFold(o, origin) {
			return origin, true
		}
	}
	return "", false
}
