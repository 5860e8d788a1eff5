package engine

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pthm/prosecheck/internal/rules"
)

// dedupSimilarity is the normalized Levenshtein similarity at or above
// which two matched texts count as the same complaint.
const dedupSimilarity = 0.8

// Resolver maps issues onto the ordered, non-overlapping sentence intervals
// of one run (the document offset -> sentence index conversion).
type Resolver struct {
	sentences []Sentence
	docLen    int
}

// NewResolver builds an interval index over the run's sentences. The
// sentences are already sorted and non-overlapping by construction.
func NewResolver(sentences []Sentence, docLen int) *Resolver {
	return &Resolver{sentences: sentences, docLen: docLen}
}

// Resolve associates every issue with exactly one sentence index, or places
// it in the unassigned bucket, then drops duplicate complaints. Issues are
// processed in the order given, so a stable input order makes the result
// deterministic.
func (r *Resolver) Resolve(issues []Issue) *SentenceIssueMap {
	m := &SentenceIssueMap{
		BySentence: make(map[int][]Issue),
	}

	for _, issue := range issues {
		target := r.target(issue)
		if target == NoSentence {
			if !r.duplicate(m.Unassigned, issue) {
				m.Unassigned = append(m.Unassigned, issue)
			}
			continue
		}
		if !r.duplicate(m.BySentence[target], issue) {
			m.BySentence[target] = append(m.BySentence[target], issue)
		}
	}

	return m
}

// target returns the sentence index for an issue, or NoSentence
func (r *Resolver) target(issue Issue) int {
	// Sentence-scoped issues carry their sentence; no search needed.
	if issue.Scope == ScopeSentence {
		if issue.SentenceHint >= 0 && issue.SentenceHint < len(r.sentences) {
			return issue.SentenceHint
		}
		return NoSentence
	}

	// The no-position signal and out-of-range offsets are never guessed
	// onto sentence 0: a wrong sentence is worse than no sentence.
	if !r.usable(issue) {
		return NoSentence
	}

	return r.SentenceAt(issue.Start, issue.End)
}

// usable reports whether a document-scoped issue carries a real range
func (r *Resolver) usable(issue Issue) bool {
	if issue.Start == 0 && issue.End == 0 && issue.MatchedText == "" {
		return false
	}
	if issue.Start < 0 || issue.Start >= issue.End || issue.End > r.docLen {
		return false
	}
	return true
}

// SentenceAt returns the index of the first sentence in document order
// whose [DocumentStart, DocumentEnd) overlaps [start, end), or NoSentence.
// A range may start inside a sentence, end inside it, or span it entirely;
// an issue crossing a sentence boundary resolves to the first overlap.
func (r *Resolver) SentenceAt(start, end int) int {
	i := sort.Search(len(r.sentences), func(i int) bool {
		return r.sentences[i].DocumentEnd > start
	})
	for ; i < len(r.sentences); i++ {
		s := r.sentences[i]
		if s.DocumentStart >= end {
			break
		}
		if s.DocumentEnd > start {
			return i
		}
	}
	return NoSentence
}

// duplicate reports whether an equivalent complaint is already present:
// same rule category family and highly overlapping matched text. Two rule
// modules independently detecting the same problem must not surface it
// twice.
func (r *Resolver) duplicate(existing []Issue, issue Issue) bool {
	family := rules.Family(issue.RuleID)
	for _, e := range existing {
		if rules.Family(e.RuleID) != family {
			continue
		}
		if overlapping(e.MatchedText, issue.MatchedText) {
			return true
		}
	}
	return false
}

// overlapping reports whether two matched texts describe the same span.
// Empty matched texts compare equal only to each other.
func overlapping(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	if len(a) >= 4 && len(b) >= 4 &&
		(strings.Contains(a, b) || strings.Contains(b, a)) {
		return true
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1-float64(dist)/float64(longest) >= dedupSimilarity
}
