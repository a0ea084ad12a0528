package factory

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/embedding/local"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/embedding/openai"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	OpenAIProvider = "openai"
	LocalProvider  = "local"
)

type Config struct {
	Provider  string `mapstructure:"provider"`
	Model     string `mapstructure:"model"`
	ApiKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Dimension int    `mapstructure:"dimension"`
}

type EmbeddingServiceLocator struct {
	logger     *logrus.Logger
	httpClient *fasthttp.Client
}

func NewServiceLocator(logger *logrus.Logger, httpClient *fasthttp.Client) *EmbeddingServiceLocator {
	return &EmbeddingServiceLocator{
		logger:     logger,
		httpClient: httpClient,
	}
}

func (l *EmbeddingServiceLocator) GetService(cfg Config) (embedding.Creator, error) {
	switch cfg.Provider {
	case OpenAIProvider:
		oc := openai.Config{
			ApiKey:  cfg.ApiKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		}
		// Only the text-embedding-3 family accepts a dimensions parameter.
		if cfg.Model == "" || strings.HasPrefix(cfg.Model, "text-embedding-3") {
			oc.Dimensions = cfg.Dimension
		}
		return openai.NewOpenAIEmbeddingService(l.httpClient, l.logger, oc), nil
	case LocalProvider, "":
		return local.NewHashingEmbedder(cfg.Dimension), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}
