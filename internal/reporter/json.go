package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/prosecheck/internal/engine"
)

// JSONReporter outputs the report as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Sentences  []JSONSentence `json:"sentences"`
	Unassigned []JSONIssue    `json:"unassigned"`
	Summary    engine.Summary `json:"summary"`
}

// JSONSentence represents a sentence in JSON format
type JSONSentence struct {
	Index    int         `json:"index"`
	Text     string      `json:"text"`
	Fragment string      `json:"fragment"`
	Issues   []JSONIssue `json:"issues"`
}

// JSONIssue represents an issue in JSON format
type JSONIssue struct {
	Rule        string `json:"rule"`
	Message     string `json:"message"`
	MatchedText string `json:"matchedText,omitempty"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Scope       string `json:"scope"`
}

// Report outputs the document report as JSON
func (r *JSONReporter) Report(rep *engine.Report) error {
	out := JSONOutput{
		Sentences:  make([]JSONSentence, 0, len(rep.Sentences)),
		Unassigned: toJSONIssues(rep.Unassigned),
		Summary:    rep.Summary,
	}

	for _, s := range rep.Sentences {
		out.Sentences = append(out.Sentences, JSONSentence{
			Index:    s.Index,
			Text:     s.PlainText,
			Fragment: s.Fragment,
			Issues:   toJSONIssues(s.Issues),
		})
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func toJSONIssues(issues []engine.Issue) []JSONIssue {
	out := make([]JSONIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, JSONIssue{
			Rule:        i.RuleID,
			Message:     i.Message,
			MatchedText: i.MatchedText,
			Start:       i.Start,
			End:         i.End,
			Scope:       i.Scope.String(),
		})
	}
	return out
}
