package middleware

import (
	"context"

	"github.com/NeuralTrust/RuleGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type requestIDMiddleware struct{}

func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

// Middleware reuses an inbound X-Request-Id or generates one, echoes it on
// the response and exposes it to handlers through the user context.
func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(common.RequestIDHeader, requestID)
		c.Locals(common.RequestIDContextKey, requestID)
		c.SetUserContext(context.WithValue(c.UserContext(), common.RequestIDContextKey, requestID))
		return c.Next()
	}
}
