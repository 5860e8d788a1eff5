package engine

import "github.com/pthm/prosecheck/internal/rules"

// Scope says which text view a rule was run against when it produced an
// issue. Offsets are only meaningful relative to that view.
type Scope int

const (
	// ScopeDocument means offsets index the flattened document text
	ScopeDocument Scope = iota
	// ScopeSentence means offsets index one sentence's plain text
	ScopeSentence
)

func (s Scope) String() string {
	if s == ScopeSentence {
		return "sentence"
	}
	return "document"
}

// NoSentence is the SentenceHint value for issues with no known sentence
const NoSentence = -1

// Issue is a rule finding placed in one of the engine's coordinate spaces.
// Start/End are byte offsets into the flattened document text when Scope is
// ScopeDocument, or into the originating sentence's plain text when Scope is
// ScopeSentence. Start == End == 0 with an empty MatchedText is the
// "no position available" signal, not a real zero-length range.
type Issue struct {
	RuleID       string `json:"rule"`
	Message      string `json:"message"`
	MatchedText  string `json:"matchedText,omitempty"`
	Start        int    `json:"start"`
	End          int    `json:"end"`
	Scope        Scope  `json:"-"`
	SentenceHint int    `json:"-"`
}

// fromFinding converts a rule's Finding into an Issue in the given scope
func fromFinding(ruleID string, f rules.Finding, scope Scope, hint int) Issue {
	return Issue{
		RuleID:       ruleID,
		Message:      f.Message,
		MatchedText:  f.Text,
		Start:        f.Start,
		End:          f.End,
		Scope:        scope,
		SentenceHint: hint,
	}
}

// SentenceIssueMap associates every issue of a run with exactly one sentence
// index, or with the Unassigned bucket. Built once per run, read-only after.
type SentenceIssueMap struct {
	BySentence map[int][]Issue
	Unassigned []Issue
}
