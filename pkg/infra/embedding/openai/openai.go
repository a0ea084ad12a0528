package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/RuleGuard/pkg/domain/embedding"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const (
	DefaultModel          = "text-embedding-3-small"
	DefaultEmbeddingsURL  = "https://api.openai.com/v1/embeddings"
	defaultRequestTimeout = 30 * time.Second
)

var (
	ErrMissingApiKey  = errors.New("embeddings API key is required")
	ErrEmptyEmbedding = errors.New("empty embedding in provider response")
)

type Config struct {
	ApiKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
	// Dimensions is sent to models that support shortened embeddings.
	Dimensions int `mapstructure:"dimensions"`
}

// HTTPClient is the subset of *fasthttp.Client the service needs.
type HTTPClient interface {
	DoTimeout(req *fasthttp.Request, resp *fasthttp.Response, timeout time.Duration) error
}

type embeddingService struct {
	client  HTTPClient
	logger  *logrus.Logger
	cfg     Config
	parsers fastjson.ParserPool
}

type embeddingRequest struct {
	Model      string `json:"model"`
	Input      string `json:"input"`
	Dimensions int    `json:"dimensions,omitempty"`
}

func NewOpenAIEmbeddingService(client HTTPClient, logger *logrus.Logger, cfg Config) embedding.Creator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultEmbeddingsURL
	}
	return &embeddingService{
		client: client,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *embeddingService) Generate(ctx context.Context, text string) (*embedding.Embedding, error) {
	if s.cfg.ApiKey == "" {
		return nil, ErrMissingApiKey
	}
	timeout, err := requestTimeout(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(embeddingRequest{
		Model:      s.cfg.Model,
		Input:      text,
		Dimensions: s.cfg.Dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedding request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(s.cfg.BaseURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)
	req.SetBody(body)

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		s.logger.WithError(err).Error("embeddings request failed")
		return nil, err
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		s.logger.WithFields(logrus.Fields{
			"status":   status,
			"response": string(resp.Body()),
		}).Error("non-OK response from embeddings API")
		return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, status)
	}

	vector, err := s.decode(resp.Body())
	if err != nil {
		s.logger.WithError(err).Error("failed to decode embeddings response")
		return nil, err
	}
	if s.cfg.Dimensions > 0 && len(vector) != s.cfg.Dimensions {
		s.logger.WithFields(logrus.Fields{
			"got":      len(vector),
			"expected": s.cfg.Dimensions,
		}).Warn("embedding dimension mismatch")
	}

	embedding.Normalize(vector)
	return &embedding.Embedding{
		Value:     vector,
		Model:     s.cfg.Model,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// decode reads data[0].embedding without materializing the rest of the body.
func (s *embeddingService) decode(body []byte) ([]float64, error) {
	p := s.parsers.Get()
	defer s.parsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid embeddings response: %w", err)
	}
	values := v.GetArray("data", "0", "embedding")
	if len(values) == 0 {
		return nil, ErrEmptyEmbedding
	}
	vector := make([]float64, len(values))
	for i, item := range values {
		f, err := item.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid embedding component %d: %w", i, err)
		}
		vector[i] = f
	}
	return vector, nil
}

// requestTimeout bounds the call by the context deadline, if any.
func requestTimeout(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	timeout := defaultRequestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}
