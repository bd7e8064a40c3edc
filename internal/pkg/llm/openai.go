package llm

import (
	"context"
	"fmt"
	"strings"

	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"github.com/shelfmark/core/internal/config"
)

// openAIClient calls any OpenAI-compatible chat-completions endpoint.
type openAIClient struct {
	client openaiclient.Client
	model  string
}

func newOpenAIClient(cfg config.AIConfig) *openAIClient {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(cfg.APIKey),
		openaioption.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, openaioption.WithBaseURL(cfg.Endpoint))
	}
	return &openAIClient{
		client: openaiclient.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(c.model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty reply", ErrUnavailable)
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty reply", ErrUnavailable)
	}
	return content, nil
}
