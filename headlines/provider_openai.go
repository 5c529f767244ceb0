package headlines

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const openAIDefaultModel = openai.GPT4oMini

type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider() (*openAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when HEADLINE_PROVIDER=openai")
	}
	model := os.Getenv("HEADLINE_MODEL")
	if model == "" {
		model = openAIDefaultModel
	}
	return &openAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (p *openAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: 60,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
