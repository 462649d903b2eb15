package documents

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Summarizer produces a summary of text under a word budget. The Claude
// implementation is used when an API key is configured; the documents
// service falls back to the local extractive summarizer otherwise.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxWords int, focus string) (string, error)
}

// ClaudeSummarizer summarizes through the Anthropic messages API.
type ClaudeSummarizer struct {
	client *anthropic.Client
}

// NewClaudeSummarizer returns a Claude-backed summarizer, or nil when no
// API key is configured.
func NewClaudeSummarizer(apiKey string) *ClaudeSummarizer {
	if apiKey == "" {
		return nil
	}
	return &ClaudeSummarizer{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

// Summarize asks the model for a summary within the word budget.
func (c *ClaudeSummarizer) Summarize(ctx context.Context, text string, maxWords int, focus string) (string, error) {
	prompt := fmt.Sprintf("Summarize the following document in at most %d words.", maxWords)
	if focus != "" {
		prompt += fmt.Sprintf(" Focus on: %s.", focus)
	}
	prompt += " Reply with the summary only.\n\n" + text

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.ModelClaude3_7Sonnet20250219),
		MaxTokens: anthropic.Int(1000),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		}),
	})
	if err != nil {
		return "", fmt.Errorf("summarize request: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if b, ok := block.AsUnion().(anthropic.TextBlock); ok {
			sb.WriteString(b.Text)
		}
	}
	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", fmt.Errorf("summarize request: empty completion")
	}
	return summary, nil
}
