package suggest

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ClaudeSuggester generates rewrite suggestions with the Anthropic API
type ClaudeSuggester struct {
	client anthropic.Client
}

// NewClaudeSuggester creates a Claude-backed suggester, or nil when no
// ANTHROPIC_API_KEY is set.
func NewClaudeSuggester() *ClaudeSuggester {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ClaudeSuggester{client: client}
}

// Suggest asks Claude for a concrete rewrite of the flagged sentence
func (s *ClaudeSuggester) Suggest(ctx context.Context, issueMessage, sentenceText, docType string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("suggester not initialized (missing ANTHROPIC_API_KEY)")
	}

	prompt := fmt.Sprintf(`A writing review of a %s document flagged this sentence:

Sentence:
%s

Issue:
%s

Rewrite the sentence to fix the issue. Keep the meaning, keep it short.
Return ONLY the rewritten sentence, no explanation.`, docType, sentenceText, issueMessage)

	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_5Haiku20241022,
		MaxTokens: 300,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Claude API error: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("empty response from Claude")
}
