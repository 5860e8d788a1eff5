package rules

import (
	"fmt"
	"regexp"
)

// WeaselWordsRule flags hedging words that weaken prose
type WeaselWordsRule struct{}

func (r *WeaselWordsRule) ID() string {
	return "clarity/weasel-words"
}

func (r *WeaselWordsRule) Description() string {
	return "Flags hedging words like 'very' or 'fairly' that weaken the text"
}

var weaselRe = regexp.MustCompile(`(?i)\b(very|really|quite|fairly|extremely|several|various|relatively|somewhat|remarkably|substantially|a number of|in some cases)\b`)

func (r *WeaselWordsRule) Run(text string) []Finding {
	var findings []Finding

	for _, loc := range weaselRe.FindAllStringIndex(text, -1) {
		matched := text[loc[0]:loc[1]]
		findings = append(findings, Finding{
			Text:    matched,
			Start:   loc[0],
			End:     loc[1],
			Message: fmt.Sprintf("Weasel word %q - be specific or drop it", matched),
		})
	}

	return findings
}
