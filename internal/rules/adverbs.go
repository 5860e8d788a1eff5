package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// AdverbRule flags -ly adverbs, which usually signal a weak verb
type AdverbRule struct{}

func (r *AdverbRule) ID() string {
	return "style/adverb"
}

func (r *AdverbRule) Description() string {
	return "Flags -ly adverbs that could be replaced by a stronger verb"
}

var adverbRe = regexp.MustCompile(`(?i)\b[a-z]+ly\b`)

// common -ly words that are not adverbs
var adverbExceptions = map[string]bool{
	"only":     true,
	"family":   true,
	"likely":   true,
	"early":    true,
	"reply":    true,
	"apply":    true,
	"supply":   true,
	"assembly": true,
	"italy":    true,
	"july":     true,
	"fly":      true,
	"rely":     true,
	"ugly":     true,
}

func (r *AdverbRule) Run(text string) []Finding {
	var findings []Finding

	for _, loc := range adverbRe.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]
		if adverbExceptions[strings.ToLower(matched)] {
			continue
		}
		findings = append(findings, Finding{
			Text:    matched,
			Start:   loc[0],
			End:     loc[1],
			Message: fmt.Sprintf("Adverb %q - consider a stronger verb instead", matched),
		})
	}

	return findings
}
