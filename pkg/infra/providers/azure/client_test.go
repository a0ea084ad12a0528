package azure_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/azure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_Validation(t *testing.T) {
	client := azure.NewAzureClient()

	tests := []struct {
		name   string
		config *providers.Config
		errMsg string
	}{
		{
			name:   "missing azure config",
			config: &providers.Config{Model: "gpt-4o"},
			errMsg: "azure configuration is required",
		},
		{
			name: "missing endpoint",
			config: &providers.Config{
				Model:       "gpt-4o",
				Credentials: providers.Credentials{Azure: &providers.AzureCredentials{}},
			},
			errMsg: "azure endpoint is required",
		},
		{
			name: "missing deployment",
			config: &providers.Config{
				Credentials: providers.Credentials{Azure: &providers.AzureCredentials{Endpoint: "https://x"}},
			},
			errMsg: "model (deployment ID) is required",
		},
		{
			name: "missing api key",
			config: &providers.Config{
				Model:       "gpt-4o",
				Credentials: providers.Credentials{Azure: &providers.AzureCredentials{Endpoint: "https://x"}},
			},
			errMsg: "API key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Ask(context.Background(), tt.config, "prompt")
			assert.Nil(t, resp)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestAsk_Success(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "/openai/deployments/moderator/chat/completions", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("api-version"))
		assert.Equal(t, "azure-key", r.Header.Get("api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-az",
			"choices": [{"message": {"role": "assistant", "content": "{\"is_violation\": true}"}}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 3, "total_tokens": 8}
		}`))
	}))
	defer server.Close()

	client := azure.NewAzureClient()
	config := &providers.Config{
		Model:       "moderator",
		Temperature: new(float64),
		Credentials: providers.Credentials{
			ApiKey: "azure-key",
			Azure:  &providers.AzureCredentials{Endpoint: server.URL + "/", ApiVersion: "2024-06-01"},
		},
	}

	resp, err := client.Ask(context.Background(), config, "moderate this")
	require.NoError(t, err)
	assert.Equal(t, float64(0), received["temperature"])
	assert.Equal(t, "chatcmpl-az", resp.ID)
	assert.Equal(t, `{"is_violation": true}`, resp.Response)
	assert.Equal(t, 8, resp.Usage.TotalTokens)
}

func TestAsk_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "rate limited"}`))
	}))
	defer server.Close()

	client := azure.NewAzureClient()
	config := &providers.Config{
		Model: "moderator",
		Credentials: providers.Credentials{
			ApiKey: "azure-key",
			Azure:  &providers.AzureCredentials{Endpoint: server.URL},
		},
	}

	_, err := client.Ask(context.Background(), config, "moderate this")
	assert.ErrorContains(t, err, "non-200 status: 429")
}
