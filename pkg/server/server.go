package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/config"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/RuleGuard/pkg/server/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	MetricsPath  = "/metrics"
	bodyLimit    = 1 * 1024 * 1024
	readTimeout  = 60 * time.Second
	writeTimeout = 60 * time.Second
	idleTimeout  = 120 * time.Second
)

type Server interface {
	Run() error
	Shutdown() error
}

type BaseServer struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Router     *fiber.App
	metricsApp *fiber.App
}

func NewBaseServer(cfg *config.Config, logger *logrus.Logger) *BaseServer {
	r := fiber.New(fiber.Config{
		AppName:               "RuleGuard",
		DisableStartupMessage: true,
		Network:               fiber.NetworkTCP,
		BodyLimit:             bodyLimit,
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		IdleTimeout:           idleTimeout,
		Immutable:             true,
	})
	r.Server().NoDefaultServerHeader = true

	return &BaseServer{
		Config: cfg,
		Logger: logger,
		Router: r,
	}
}

func (s *BaseServer) WithRouters(routers ...router.ServerRouter) *BaseServer {
	for _, r := range routers {
		if err := r.BuildRoutes(s.Router); err != nil {
			s.Logger.WithError(err).Error("failed to build routes")
		}
	}
	return s
}

// MetricsHandler exposes the service registry in the Prometheus text format.
func MetricsHandler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(prometheus.Gatherer(), promhttp.HandlerOpts{}),
	)
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	}
}

func (s *BaseServer) setupMetricsEndpoint() {
	if !s.Config.Metrics.Enabled {
		s.Logger.Info("prometheus metrics are disabled by configuration")
		return
	}
	if s.metricsApp != nil {
		return
	}

	s.metricsApp = fiber.New(fiber.Config{DisableStartupMessage: true})
	s.metricsApp.Use(recover.New())
	s.metricsApp.Get(MetricsPath, MetricsHandler())

	go func() {
		addr := fmt.Sprintf(":%d", s.Config.Server.MetricsPort)
		if err := s.metricsApp.Listen(addr); err != nil {
			if !strings.Contains(err.Error(), "address already in use") {
				s.Logger.WithError(err).Error("failed to start metrics server")
			}
		}
	}()
}

func (s *BaseServer) shutdownMetrics() {
	if s.metricsApp == nil {
		return
	}
	if err := s.metricsApp.Shutdown(); err != nil {
		s.Logger.WithError(err).Warn("failed to stop metrics server")
	}
}
