package factory_test

import (
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLocator_Get(t *testing.T) {
	locator := factory.NewProviderLocator()

	for _, name := range []string{
		factory.ProviderOpenAI,
		factory.ProviderGemini,
		factory.ProviderGoogle,
		factory.ProviderAnthropic,
		factory.ProviderBedrock,
		factory.ProviderAzure,
		"OpenAI",
	} {
		t.Run(name, func(t *testing.T) {
			client, err := locator.Get(name)
			require.NoError(t, err)
			assert.NotNil(t, client)
		})
	}

	_, err := locator.Get("cohere")
	assert.ErrorContains(t, err, "unsupported provider: cohere")
}
