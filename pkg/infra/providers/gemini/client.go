package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type geminiOptions struct {
	BaseURL    string `mapstructure:"base_url"`
	APIVersion string `mapstructure:"api_version"`
}

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewGeminiClient() providers.Client {
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

	var options geminiOptions
	if len(config.Options) > 0 {
		if err := mapstructure.Decode(config.Options, &options); err != nil {
			return nil, fmt.Errorf("invalid gemini options: %w", err)
		}
	}

	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey, options)
	if err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	var parts []*genai.Part
	if config.SystemPrompt != "" {
		parts = append(parts, &genai.Part{Text: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		parts = append(parts, &genai.Part{Text: providers.FormatInstructions(config.Instructions)})
	}

	genConfig := &genai.GenerateContentConfig{}
	if len(parts) > 0 {
		genConfig.SystemInstruction = &genai.Content{Parts: parts}
	}
	if config.Temperature != nil {
		temperature := float32(*config.Temperature)
		genConfig.Temperature = &temperature
	}

	result, err := genaiClient.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return nil, fmt.Errorf("no completions returned")
	}

	resp := &providers.CompletionResponse{
		ID:       providers.ResponseID(ctx, "gemini"),
		Model:    model,
		Response: responseText,
	}
	if result.UsageMetadata != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey string, options geminiOptions) (*genai.Client, error) {
	key := apiKey + "|" + options.BaseURL + "|" + options.APIVersion
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*genai.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v2, ok := c.clientPool.Load(key); ok {
			return v2, nil
		}
		cli, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{
				BaseURL:    options.BaseURL,
				APIVersion: options.APIVersion,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(*genai.Client)
	if !ok {
		return nil, fmt.Errorf("invalid client type in pool")
	}
	return cli, nil
}
