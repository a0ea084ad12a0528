package server

import (
	"fmt"

	"github.com/NeuralTrust/RuleGuard/pkg/config"
	"github.com/NeuralTrust/RuleGuard/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Config  *config.Config
		Logger  *logrus.Logger
		Routers []router.ServerRouter
	}
	APIServer struct {
		*BaseServer
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger).WithRouters(di.Routers...),
	}
}

func (s *APIServer) Run() error {
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting ruleguard api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	s.shutdownMetrics()
	return s.Router.Shutdown()
}
