package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// LongSentenceRule flags sentences with too many words
type LongSentenceRule struct {
	MaxWords int
}

// NewLongSentenceRule creates the rule with the default word limit
func NewLongSentenceRule() *LongSentenceRule {
	return &LongSentenceRule{MaxWords: 40}
}

func (r *LongSentenceRule) ID() string {
	return "length/long-sentence"
}

func (r *LongSentenceRule) Description() string {
	return "Flags sentences that exceed the word limit and should be broken up"
}

func (r *LongSentenceRule) Run(text string) []Finding {
	var findings []Finding

	for _, span := range roughSentenceSpans(text) {
		segment := text[span[0]:span[1]]
		words := len(strings.Fields(segment))
		if words <= r.MaxWords {
			continue
		}
		findings = append(findings, Finding{
			Text:    segment,
			Start:   span[0],
			End:     span[1],
			Message: fmt.Sprintf("Sentence has %d words (limit %d) - consider breaking it up", words, r.MaxWords),
		})
	}

	return findings
}

var roughBoundaryRe = regexp.MustCompile(`[.!?]+(\s+|$)`)

// roughSentenceSpans splits text into approximate sentence spans with byte
// offsets. Rules only need a coarse split; the engine owns the real
// segmentation.
func roughSentenceSpans(text string) [][2]int {
	var spans [][2]int
	start := 0

	for _, loc := range roughBoundaryRe.FindAllStringIndex(text, -1) {
		end := loc[1]
		if strings.TrimSpace(text[start:end]) != "" {
			spans = append(spans, [2]int{start, end})
		}
		start = end
	}

	if strings.TrimSpace(text[start:]) != "" {
		spans = append(spans, [2]int{start, len(text)})
	}

	return spans
}
