package explain

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// LLMCaller abstracts the model call so tests can substitute canned or
// failing responses.
type LLMCaller interface {
	// GenerateJSON sends a prompt and returns the raw text of the model's
	// reply, which is expected (but not guaranteed) to be a JSON object.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// AnthropicCaller calls the Anthropic Messages API.
type AnthropicCaller struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAnthropicCallerFromEnv builds a caller from ANTHROPIC_API_KEY. Returns
// nil when the key is unset; the gateway treats a nil caller as "service not
// configured" and falls back.
func NewAnthropicCallerFromEnv() LLMCaller {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if key == "" {
		return nil
	}
	return &AnthropicCaller{
		client:    anthropic.NewClient(option.WithAPIKey(key)),
		model:     anthropic.ModelClaudeSonnet4_20250514,
		maxTokens: 2048,
	}
}

func (c *AnthropicCaller) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(0.25),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return stripCodeFences(sb.String()), nil
}

// stripCodeFences removes a leading ```json / ``` fence pair if the model
// wrapped its reply in one.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
