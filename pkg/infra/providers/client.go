package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials            `json:"credentials" mapstructure:"credentials"`
	Model        string                 `json:"model" mapstructure:"model"`
	MaxTokens    int                    `json:"max_tokens,omitempty" mapstructure:"max_tokens"`
	Temperature  *float64               `json:"temperature,omitempty" mapstructure:"temperature"`
	SystemPrompt string                 `json:"system_prompt,omitempty" mapstructure:"system_prompt"`
	Instructions []string               `json:"instructions,omitempty" mapstructure:"instructions"`
	Options      map[string]interface{} `json:"options,omitempty" mapstructure:"options"`
}

type Credentials struct {
	ApiKey     string                 `json:"api_key,omitempty" mapstructure:"api_key"`
	Azure      *AzureCredentials      `json:"azure,omitempty" mapstructure:"azure"`
	AwsBedrock *AwsBedrockCredentials `json:"aws_bedrock,omitempty" mapstructure:"aws_bedrock"`
}

type AzureCredentials struct {
	Endpoint    string `json:"endpoint" mapstructure:"endpoint"`
	ApiVersion  string `json:"api_version,omitempty" mapstructure:"api_version"`
	UseIdentity bool   `json:"use_identity,omitempty" mapstructure:"use_identity"`
}

type AwsBedrockCredentials struct {
	AccessKey    string `json:"access_key,omitempty" mapstructure:"access_key"`
	SecretKey    string `json:"secret_key,omitempty" mapstructure:"secret_key"`
	SessionToken string `json:"session_token,omitempty" mapstructure:"session_token"`
	Region       string `json:"region,omitempty" mapstructure:"region"`
	UseRole      bool   `json:"use_role,omitempty" mapstructure:"use_role"`
	RoleARN      string `json:"role_arn,omitempty" mapstructure:"role_arn"`
}

//go:generate mockery --name=Client --dir=. --output=../../../mocks --filename=provider_client_mock.go --case=underscore --with-expecter

// Client sends a single prompt to a hosted model and returns its text.
// Implementations do not retry.
type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}
