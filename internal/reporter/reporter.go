package reporter

import "github.com/pthm/prosecheck/internal/engine"

// Reporter defines the interface for outputting analysis results
type Reporter interface {
	// Report outputs the document report
	Report(rep *engine.Report) error
}

// flaggedSentences counts sentences that carry at least one issue
func flaggedSentences(rep *engine.Report) int {
	n := 0
	for _, s := range rep.Sentences {
		if len(s.Issues) > 0 {
			n++
		}
	}
	return n
}
