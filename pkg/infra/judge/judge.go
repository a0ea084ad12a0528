package judge

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/app/moderation"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/httpx"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBreakerTimeout     = 30 * time.Second
	DefaultBreakerMaxFailures = 5
	DefaultMaxTokens          = 256
)

type Config struct {
	Provider           string
	Model              string
	MaxTokens          int
	Temperature        *float64
	Credentials        providers.Credentials
	Options            map[string]interface{}
	BreakerTimeout     time.Duration
	BreakerMaxFailures uint32
}

type providerJudge struct {
	logger  *logrus.Logger
	client  providers.Client
	breaker httpx.CircuitBreaker
	cfg     Config
}

// NewProviderJudge resolves the configured provider and returns a Judge that
// sends every verdict request through a circuit breaker. Calls are never
// retried.
func NewProviderJudge(logger *logrus.Logger, locator factory.ProviderLocator, cfg Config) (moderation.Judge, error) {
	client, err := locator.Get(cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("judge provider: %w", err)
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = DefaultBreakerTimeout
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = DefaultBreakerMaxFailures
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &providerJudge{
		logger:  logger,
		client:  client,
		breaker: httpx.NewCircuitBreaker("judge-"+cfg.Provider, cfg.BreakerTimeout, cfg.BreakerMaxFailures),
		cfg:     cfg,
	}, nil
}

func (j *providerJudge) Judge(ctx context.Context, req *moderation.Request) (string, error) {
	pcfg := &providers.Config{
		Credentials:  j.cfg.Credentials,
		Model:        j.cfg.Model,
		MaxTokens:    j.cfg.MaxTokens,
		Temperature:  j.cfg.Temperature,
		SystemPrompt: req.SystemPrompt,
		Options:      j.cfg.Options,
	}

	var resp *providers.CompletionResponse
	err := j.breaker.Execute(func() error {
		var askErr error
		resp, askErr = j.client.Ask(ctx, pcfg, req.Prompt)
		return askErr
	})
	if err != nil {
		prometheus.JudgeCallsTotal.WithLabelValues(j.cfg.Provider, "error").Inc()
		j.logger.WithError(err).WithFields(logrus.Fields{
			"provider": j.cfg.Provider,
			"model":    j.cfg.Model,
			"breaker":  j.breaker.State(),
		}).Warn("judging model call failed")
		return "", fmt.Errorf("%w: %v", moderation.ErrTransportFailure, err)
	}
	if resp == nil {
		prometheus.JudgeCallsTotal.WithLabelValues(j.cfg.Provider, "error").Inc()
		return "", fmt.Errorf("%w: empty response", moderation.ErrTransportFailure)
	}

	prometheus.JudgeCallsTotal.WithLabelValues(j.cfg.Provider, "ok").Inc()
	j.logger.WithFields(logrus.Fields{
		"provider":          j.cfg.Provider,
		"model":             resp.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("judging model responded")
	return resp.Response, nil
}
