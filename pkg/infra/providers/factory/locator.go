package factory

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/anthropic"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/azure"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/bedrock"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/gemini"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderGoogle    = "google"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
	ProviderAzure     = "azure"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=../../../../mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct{}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderGemini, ProviderGoogle:
		return gemini.NewGeminiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case ProviderBedrock:
		return bedrock.NewBedrockClient(), nil
	case ProviderAzure:
		return azure.NewAzureClient(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
