package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
)

const (
	defaultAPIVersion = "2024-02-15-preview"
	cognitiveScope    = "https://cognitiveservices.azure.com/.default"
	httpClientTimeout = 120 * time.Second
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage providers.Usage `json:"usage"`
}

type client struct {
	httpClient *http.Client
	credMu     sync.Mutex
	credential azcore.TokenCredential
}

// NewAzureClient talks to Azure OpenAI deployments. It authenticates with an
// api-key, or with an Entra ID token when Credentials.Azure.UseIdentity is set.
func NewAzureClient() providers.Client {
	return &client{
		httpClient: &http.Client{Timeout: httpClientTimeout},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	azureCfg := config.Credentials.Azure
	if azureCfg == nil {
		return nil, fmt.Errorf("azure configuration is required")
	}
	if azureCfg.Endpoint == "" {
		return nil, fmt.Errorf("azure endpoint is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model (deployment ID) is required")
	}
	if !azureCfg.UseIdentity && config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required when not using Azure identity")
	}

	var messages []chatMessage
	if config.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		messages = append(messages, chatMessage{Role: "user", Content: providers.FormatInstructions(config.Instructions)})
	}
	if prompt != "" {
		messages = append(messages, chatMessage{Role: "user", Content: prompt})
	}

	bodyBytes, err := json.Marshal(chatRequest{
		Messages:    messages,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiVersion := defaultAPIVersion
	if azureCfg.ApiVersion != "" {
		apiVersion = azureCfg.ApiVersion
	}
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimSuffix(azureCfg.Endpoint, "/"), config.Model, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if azureCfg.UseIdentity {
		token, err := c.getAzureADToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get Azure AD token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Set("api-key", config.Credentials.ApiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 status: %d\n%s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	id := parsed.ID
	if id == "" {
		id = providers.ResponseID(ctx, "azure")
	}
	return &providers.CompletionResponse{
		ID:       id,
		Model:    config.Model,
		Response: parsed.Choices[0].Message.Content,
		Usage:    parsed.Usage,
	}, nil
}

func (c *client) getAzureADToken(ctx context.Context) (string, error) {
	c.credMu.Lock()
	if c.credential == nil {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			c.credMu.Unlock()
			return "", fmt.Errorf("failed to create credential: %w", err)
		}
		c.credential = cred
	}
	cred := c.credential
	c.credMu.Unlock()

	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{cognitiveScope},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}
