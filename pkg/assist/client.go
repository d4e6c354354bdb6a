// Package assist wraps the OpenAI chat completion API behind a minimal
// text-completion interface.
package assist

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client generates one completion per prompt.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a Client. Returns nil when apiKey is empty, which
// disables the assistant.
func NewClient(apiKey, model string) *Client {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{client: openai.NewClient(apiKey), model: model}
}

// Complete sends a single chat completion request. No retries, no
// streaming; failures surface to the caller.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("assist: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assist: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
