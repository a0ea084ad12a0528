package dependency_container

import (
	"io"
	"testing"

	"github.com/NeuralTrust/RuleGuard/pkg/config"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/events"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.VectorIndex.Backend = BackendMemory
	cfg.Embedding.Provider = "local"
	cfg.Embedding.Dimension = 64
	cfg.Judge.Provider = "openai"
	cfg.Judge.Model = "gpt-4o-mini"
	cfg.Server.SecretKey = "secret"
	cfg.Auth.ApiKeys = []config.ApiKeyConfig{{Key: "k", Scope: "s"}}
	return cfg
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewContainer_MemoryBackend(t *testing.T) {
	c, err := NewContainer(ContainerDI{Cfg: testConfig(), Logger: quietLogger()})
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.RedisClient)
	assert.NotNil(t, c.RuleStore)
	assert.NotNil(t, c.ModerationService)
	assert.NotNil(t, c.HandlerTransport.ModerateHandler)
	assert.NotNil(t, c.MiddlewareTransport.AdminAuthMiddleware)
	assert.Nil(t, c.MiddlewareTransport.MetricsMiddleware)
}

func TestNewContainer_AdminDisabledWithoutSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Server.SecretKey = ""
	c, err := NewContainer(ContainerDI{Cfg: cfg, Logger: quietLogger()})
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.MiddlewareTransport.AdminAuthMiddleware)
}

func TestNewContainer_Errors(t *testing.T) {
	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig()
		cfg.VectorIndex.Backend = "chroma"
		_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: quietLogger()})
		assert.ErrorContains(t, err, "unsupported vector index backend")
	})

	t.Run("unknown judge provider", func(t *testing.T) {
		cfg := testConfig()
		cfg.Judge.Provider = "nope"
		_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: quietLogger()})
		assert.ErrorContains(t, err, "failed to initialize judge")
	})

	t.Run("postgres exporter without database", func(t *testing.T) {
		cfg := testConfig()
		cfg.Events.Enabled = true
		cfg.Events.Exporters = []events.ExporterConfig{{Name: "postgres"}}
		_, err := NewContainer(ContainerDI{Cfg: cfg, Logger: quietLogger()})
		assert.ErrorContains(t, err, "failed to initialize event exporters")
	})
}

func TestJudgeCredentials(t *testing.T) {
	creds := judgeCredentials(config.JudgeConfig{ApiKey: "key"})
	assert.Equal(t, "key", creds.ApiKey)
	assert.Nil(t, creds.Azure)
	assert.Nil(t, creds.AwsBedrock)

	creds = judgeCredentials(config.JudgeConfig{
		Azure:   config.AzureConfig{Endpoint: "https://x.openai.azure.com"},
		Bedrock: config.BedrockConfig{Region: "us-east-1", UseRole: true, RoleARN: "arn:aws:iam::1:role/r"},
	})
	require.NotNil(t, creds.Azure)
	assert.Equal(t, "https://x.openai.azure.com", creds.Azure.Endpoint)
	require.NotNil(t, creds.AwsBedrock)
	assert.True(t, creds.AwsBedrock.UseRole)
	assert.Equal(t, "us-east-1", creds.AwsBedrock.Region)
}
