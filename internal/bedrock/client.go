// Package bedrock adapts the Amazon Bedrock Converse API to the
// processor's Generator interface.
package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// Params are the inference parameters sent with every request.
type Params struct {
	Temperature float32
	TopP        float32
	MaxTokens   int32
}

// DefaultParams favor low-temperature structured output.
func DefaultParams() Params {
	return Params{
		Temperature: 0.1,
		TopP:        0.9,
		MaxTokens:   4000,
	}
}

// Client invokes a single Bedrock model with fixed inference parameters.
type Client struct {
	client  *bedrockruntime.Client
	modelID string
	params  Params
}

// New resolves AWS credentials from the default chain and returns a client
// for the given model. Transport retries are capped at one attempt; the
// processor's fallback handles failures instead.
func New(ctx context.Context, region, modelID string, params Params) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
		o.RetryMaxAttempts = 1
	})

	return &Client{
		client:  client,
		modelID: modelID,
		params:  params,
	}, nil
}

// Generate sends the prompt as a single user message and returns the first
// text block of the reply. Empty output is an error so the caller can
// degrade to its fallback.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := c.client.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: prompt},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			Temperature: aws.Float32(c.params.Temperature),
			TopP:        aws.Float32(c.params.TopP),
			MaxTokens:   aws.Int32(c.params.MaxTokens),
		},
	})
	if err != nil {
		return "", fmt.Errorf("converse: %w", err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("unexpected output type %T", out.Output)
	}

	for _, block := range msg.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok && text.Value != "" {
			return text.Value, nil
		}
	}

	return "", fmt.Errorf("no text content in model response")
}
