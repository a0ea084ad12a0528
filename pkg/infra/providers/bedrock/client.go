package bedrock

import (
	"context"
	"fmt"

	awsBedrock "github.com/NeuralTrust/RuleGuard/pkg/infra/bedrock"
	"github.com/NeuralTrust/RuleGuard/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

type client struct {
	runtimes awsBedrock.RuntimeProvider
}

func NewBedrockClient() providers.Client {
	return NewBedrockClientWithRuntimes(awsBedrock.NewClientPool())
}

func NewBedrockClientWithRuntimes(runtimes awsBedrock.RuntimeProvider) providers.Client {
	return &client{runtimes: runtimes}
}

// Ask uses the Converse API so the same request shape works across the
// model families hosted on Bedrock.
func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	runtime, err := c.runtimes.Get(ctx, credentialsFrom(config.Credentials))
	if err != nil {
		return nil, fmt.Errorf("failed to create Bedrock client: %w", err)
	}

	var messages []types.Message
	if len(config.Instructions) > 0 {
		messages = append(messages, userMessage(providers.FormatInstructions(config.Instructions)))
	}
	if prompt != "" {
		messages = append(messages, userMessage(prompt))
	}

	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(config.Model),
		Messages: messages,
	}
	if config.SystemPrompt != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: config.SystemPrompt},
		}
	}
	if config.MaxTokens > 0 || config.Temperature != nil {
		inference := &types.InferenceConfiguration{}
		if config.MaxTokens > 0 {
			inference.MaxTokens = aws.Int32(int32(config.MaxTokens))
		}
		if config.Temperature != nil {
			inference.Temperature = aws.Float32(float32(*config.Temperature))
		}
		input.InferenceConfig = inference
	}

	out, err := runtime.Converse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke model: %w", err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, fmt.Errorf("unexpected converse output type %T", out.Output)
	}
	var responseText string
	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			responseText = text.Value
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("no completions returned")
	}

	resp := &providers.CompletionResponse{
		ID:       providers.ResponseID(ctx, "bedrock"),
		Model:    config.Model,
		Response: responseText,
	}
	if out.Usage != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(aws.ToInt32(out.Usage.InputTokens)),
			CompletionTokens: int(aws.ToInt32(out.Usage.OutputTokens)),
			TotalTokens:      int(aws.ToInt32(out.Usage.TotalTokens)),
		}
	}
	return resp, nil
}

func userMessage(text string) types.Message {
	return types.Message{
		Role:    types.ConversationRoleUser,
		Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: text}},
	}
}

func credentialsFrom(creds providers.Credentials) awsBedrock.Credentials {
	if creds.AwsBedrock == nil {
		return awsBedrock.Credentials{}
	}
	return awsBedrock.Credentials{
		AccessKey:    creds.AwsBedrock.AccessKey,
		SecretKey:    creds.AwsBedrock.SecretKey,
		SessionToken: creds.AwsBedrock.SessionToken,
		Region:       creds.AwsBedrock.Region,
		UseRole:      creds.AwsBedrock.UseRole,
		RoleARN:      creds.AwsBedrock.RoleARN,
	}
}
