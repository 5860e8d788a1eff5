package rules

import (
	"fmt"
	"strings"
)

// ClicheRule flags worn-out phrases
type ClicheRule struct{}

func (r *ClicheRule) ID() string {
	return "clarity/cliche"
}

func (r *ClicheRule) Description() string {
	return "Flags cliched phrases that add no information"
}

var cliches = []string{
	"at the end of the day",
	"low-hanging fruit",
	"think outside the box",
	"in this day and age",
	"needless to say",
	"it goes without saying",
	"last but not least",
	"the fact of the matter",
	"in a nutshell",
	"when all is said and done",
}

func (r *ClicheRule) Run(text string) []Finding {
	var findings []Finding
	lower := strings.ToLower(text)

	for _, phrase := range cliches {
		from := 0
		for {
			i := strings.Index(lower[from:], phrase)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(phrase)
			findings = append(findings, Finding{
				Text:    text[start:end],
				Start:   start,
				End:     end,
				Message: fmt.Sprintf("Cliche %q - say it plainly", phrase),
			})
			from = end
		}
	}

	return findings
}
