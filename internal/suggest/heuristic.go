package suggest

import (
	"context"
	"strings"
)

// HeuristicSuggester produces canned guidance without any API. Used as the
// offline fallback when no Claude suggester is available.
type HeuristicSuggester struct{}

// NewHeuristicSuggester creates the offline suggester
func NewHeuristicSuggester() *HeuristicSuggester {
	return &HeuristicSuggester{}
}

// Suggest maps the issue message to generic editing advice
func (s *HeuristicSuggester) Suggest(_ context.Context, issueMessage, sentenceText, _ string) (string, error) {
	msg := strings.ToLower(issueMessage)

	switch {
	case strings.Contains(msg, "passive"):
		return "Name the actor and use an active verb.", nil
	case strings.Contains(msg, "words (limit"):
		return "Split this sentence at a conjunction or semicolon.", nil
	case strings.Contains(msg, "weasel"):
		return "Replace the hedge with a concrete quantity or remove it.", nil
	case strings.Contains(msg, "repeated word"):
		return "Delete the duplicated word.", nil
	case strings.Contains(msg, "cliche"):
		return "State the point directly instead of the stock phrase.", nil
	case strings.Contains(msg, "adverb"):
		return "Pick a verb strong enough to drop the adverb.", nil
	}

	if len(strings.Fields(sentenceText)) > 25 {
		return "Shorten the sentence and lead with the main clause.", nil
	}
	return "Revise the sentence to address the issue directly.", nil
}
