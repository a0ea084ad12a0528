package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_MissingAPIKey(t *testing.T) {
	client := gemini.NewGeminiClient()

	resp, err := client.Ask(context.Background(), &providers.Config{}, "prompt")
	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "API key is required")
}

func TestAsk_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/"+gemini.DefaultModel+":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"is_violation\": false, \"reason\": \"fine\"}"}]}}],
			"usageMetadata": {"promptTokenCount": 40, "candidatesTokenCount": 10, "totalTokenCount": 50}
		}`))
	}))
	defer server.Close()

	client := gemini.NewGeminiClient()
	config := &providers.Config{
		SystemPrompt: "be strict",
		Credentials:  providers.Credentials{ApiKey: "test-key"},
		Options:      map[string]interface{}{"base_url": server.URL + "/"},
	}

	resp, err := client.Ask(context.Background(), config, "moderate this")
	require.NoError(t, err)
	assert.Equal(t, `{"is_violation": false, "reason": "fine"}`, resp.Response)
	assert.Equal(t, gemini.DefaultModel, resp.Model)
	assert.Equal(t, 50, resp.Usage.TotalTokens)
	assert.True(t, strings.HasPrefix(resp.ID, "gemini-"))
}
