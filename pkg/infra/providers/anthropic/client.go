package anthropic

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/mitchellh/mapstructure"
)

const (
	defaultModel     = "claude-3-5-haiku-latest"
	defaultMaxTokens = 512
)

type anthropicOptions struct {
	BaseURL string `mapstructure:"base_url"`
}

type client struct {
	clientPool *sync.Map
}

func NewAnthropicClient() providers.Client {
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

	var options anthropicOptions
	if len(config.Options) > 0 {
		if err := mapstructure.Decode(config.Options, &options); err != nil {
			return nil, fmt.Errorf("invalid anthropic options: %w", err)
		}
	}

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey, options.BaseURL)

	var messages []anthropic.MessageParam
	if len(config.Instructions) > 0 {
		messages = append(messages, anthropic.NewUserMessage(
			anthropic.NewTextBlock(providers.FormatInstructions(config.Instructions)),
		))
	}
	if prompt != "" {
		messages = append(messages, anthropic.NewUserMessage(
			anthropic.NewTextBlock(prompt),
		))
	}

	model := anthropic.Model(defaultModel)
	if config.Model != "" {
		model = anthropic.Model(config.Model)
	}

	maxTokens := int64(defaultMaxTokens)
	if config.MaxTokens > 0 {
		maxTokens = int64(config.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		Messages:  messages,
		MaxTokens: maxTokens,
	}
	if config.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: config.SystemPrompt, Type: "text"},
		}
	}
	if config.Temperature != nil {
		params.Temperature = anthropic.Float(*config.Temperature)
	}

	message, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var responseText string
	for _, content := range message.Content {
		if content.Type == "text" {
			responseText = content.Text
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("no text content returned")
	}

	return &providers.CompletionResponse{
		ID:       message.ID,
		Model:    string(model),
		Response: responseText,
		Usage: providers.Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(apiKey, baseURL string) *anthropic.Client {
	key := apiKey + "|" + baseURL
	if clientVal, ok := c.clientPool.Load(key); ok {
		if cli, ok := clientVal.(*anthropic.Client); ok {
			return cli
		}
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := anthropic.NewClient(opts...)
	actual, _ := c.clientPool.LoadOrStore(key, &cli)
	if stored, ok := actual.(*anthropic.Client); ok {
		return stored
	}
	return &cli
}
