package suggest

import "context"

// Suggester produces a rewrite suggestion for one issue. It is invoked per
// issue by the caller after analysis; the engine itself never calls it.
type Suggester interface {
	Suggest(ctx context.Context, issueMessage, sentenceText, docType string) (string, error)
}
