package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/mitchellh/mapstructure"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/singleflight"
)

type openaiOptions struct {
	BaseURL      string `mapstructure:"base_url"`
	Organization string `mapstructure:"organization"`
}

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewOpenaiClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	var options openaiOptions
	if len(config.Options) > 0 {
		if err := mapstructure.Decode(config.Options, &options); err != nil {
			return nil, fmt.Errorf("invalid openai options: %w", err)
		}
	}

	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey, options)

	var messages []openai.ChatCompletionMessageParamUnion
	if config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(config.SystemPrompt))
	}
	if len(config.Instructions) > 0 {
		messages = append(messages, openai.UserMessage(providers.FormatInstructions(config.Instructions)))
	}
	if prompt != "" {
		messages = append(messages, openai.UserMessage(prompt))
	}

	params := openai.ChatCompletionNewParams{
		Model:    config.Model,
		Messages: messages,
	}
	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}
	if config.Temperature != nil {
		params.Temperature = openai.Float(*config.Temperature)
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: resp.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(apiKey string, options openaiOptions) *openai.Client {
	key := apiKey + "|" + options.BaseURL + "|" + options.Organization
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*openai.Client); ok {
			return cli
		}
	}
	v, _, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cli := newClient(apiKey, options)
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if cli, ok := v.(*openai.Client); ok {
		return cli
	}
	return newClient(apiKey, options)
}

func newClient(apiKey string, options openaiOptions) *openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if options.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(options.BaseURL))
	}
	if options.Organization != "" {
		opts = append(opts, option.WithOrganization(options.Organization))
	}
	cli := openai.NewClient(opts...)
	return &cli
}
