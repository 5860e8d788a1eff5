package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// RepeatedWordRule flags the same word appearing twice in a row.
// Go's regexp has no backreferences, so adjacency is checked by scanning
// word spans and comparing neighbors.
type RepeatedWordRule struct{}

func (r *RepeatedWordRule) ID() string {
	return "style/repeated-word"
}

func (r *RepeatedWordRule) Description() string {
	return "Flags accidental word doubling like 'the the'"
}

var wordRe = regexp.MustCompile(`[A-Za-z']+`)

func (r *RepeatedWordRule) Run(text string) []Finding {
	var findings []Finding

	spans := wordRe.FindAllStringIndex(text, -1)
	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]

		// Only flag words separated by plain spacing, not punctuation
		// or line structure that makes the doubling intentional.
		between := text[prev[1]:cur[0]]
		if strings.TrimSpace(between) != "" || strings.Contains(between, "\n") {
			continue
		}

		a := strings.ToLower(text[prev[0]:prev[1]])
		b := strings.ToLower(text[cur[0]:cur[1]])
		if a != b {
			continue
		}

		matched := text[prev[0]:cur[1]]
		findings = append(findings, Finding{
			Text:    matched,
			Start:   prev[0],
			End:     cur[1],
			Message: fmt.Sprintf("Repeated word %q", matched),
		})
	}

	return findings
}
