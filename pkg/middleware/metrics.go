package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

type metricsMiddleware struct {
	cfg prometheus.MetricsConfig
}

func NewMetricsMiddleware(cfg prometheus.MetricsConfig) Middleware {
	return &metricsMiddleware{cfg: cfg}
}

// Middleware records request counts and latency. Routes are labelled by
// their registered pattern so path parameters do not explode cardinality.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		route := "all"
		if m.cfg.EnablePerRoute {
			route = c.Route().Path
		}

		prometheus.RequestTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		if m.cfg.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(route).
				Observe(float64(time.Since(start).Milliseconds()))
		}
		return err
	}
}
