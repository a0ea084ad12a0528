package factory_test

import (
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/infra/embedding/factory"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestGetService(t *testing.T) {
	locator := factory.NewServiceLocator(logrus.New(), &fasthttp.Client{})

	for _, provider := range []string{"", factory.LocalProvider, factory.OpenAIProvider} {
		svc, err := locator.GetService(factory.Config{Provider: provider})
		assert.NoError(t, err, provider)
		assert.NotNil(t, svc, provider)
	}

	_, err := locator.GetService(factory.Config{Provider: "cohere"})
	assert.EqualError(t, err, "unsupported embedding provider: cohere")
}
