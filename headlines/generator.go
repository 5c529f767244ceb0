package headlines

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// CompletionProvider is the one thing a headline backend has to do:
// turn a prompt into a short piece of text. Implemented for OpenAI and
// Anthropic; tests swap in a fake.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const systemPrompt = "You are a sports journalist covering an inter-house school competition. " +
	"Write punchy one-sentence headlines. No quotes, no hashtags, no emoji."

const maxHeadlineLen = 140

var positionLabels = map[int]string{
	1: "won gold (1st place)",
	2: "took silver (2nd place)",
	3: "claimed bronze (3rd place)",
}

// Generator produces one headline per event result. Failures are
// returned, never fatal — the worker retries and event persistence
// never waits on a headline.
type Generator struct {
	provider CompletionProvider
}

func NewGenerator(provider CompletionProvider) *Generator {
	return &Generator{provider: provider}
}

// NewGeneratorFromEnv picks the provider from HEADLINE_PROVIDER
// ("openai" or "anthropic"). Returns (nil, nil) when unset so the
// caller can run without headline generation at all.
func NewGeneratorFromEnv() (*Generator, error) {
	switch name := strings.ToLower(os.Getenv("HEADLINE_PROVIDER")); name {
	case "":
		return nil, nil
	case "openai":
		provider, err := newOpenAIProvider()
		if err != nil {
			return nil, err
		}
		return NewGenerator(provider), nil
	case "anthropic":
		provider, err := newAnthropicProvider()
		if err != nil {
			return nil, err
		}
		return NewGenerator(provider), nil
	default:
		return nil, fmt.Errorf("unknown HEADLINE_PROVIDER %q (want openai or anthropic)", name)
	}
}

// ForResult generates a headline for one placed finish.
func (g *Generator) ForResult(ctx context.Context, eventName, houseName string, position int) (string, error) {
	label, ok := positionLabels[position]
	if !ok {
		return "", fmt.Errorf("headlines: no label for position %d", position)
	}

	prompt := fmt.Sprintf("House %s %s in the %q event. Write one headline.", houseName, label, eventName)
	raw, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("headline generation failed: %w", err)
	}

	headline := sanitize(raw)
	if headline == "" {
		return "", fmt.Errorf("headline generation returned empty text")
	}
	return headline, nil
}

// sanitize flattens the model output to a single trimmed line and caps
// its length. Models like to wrap headlines in quotes; strip those.
func sanitize(raw string) string {
	line := strings.TrimSpace(raw)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.Trim(line, `"'`)
	if len(line) > maxHeadlineLen {
		line = strings.TrimSpace(line[:maxHeadlineLen])
	}
	return line
}
