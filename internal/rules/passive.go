package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// PassiveVoiceRule flags likely passive-voice constructions
type PassiveVoiceRule struct{}

func (r *PassiveVoiceRule) ID() string {
	return "style/passive-voice"
}

func (r *PassiveVoiceRule) Description() string {
	return "Flags passive-voice constructions that hide the actor"
}

var passiveRe = regexp.MustCompile(`(?i)\b(am|is|are|was|were|be|been|being)\s+([a-z]+(?:ed|en|wn))\b`)

// participles that end like past participles but usually are not passive
var passiveExceptions = map[string]bool{
	"open":   true,
	"often":  true,
	"golden": true,
	"even":   true,
	"seven":  true,
}

func (r *PassiveVoiceRule) Run(text string) []Finding {
	var findings []Finding

	for _, m := range passiveRe.FindAllStringSubmatchIndex(text, -1) {
		participle := strings.ToLower(text[m[4]:m[5]])
		if passiveExceptions[participle] {
			continue
		}
		matched := text[m[0]:m[1]]
		findings = append(findings, Finding{
			Text:    matched,
			Start:   m[0],
			End:     m[1],
			Message: fmt.Sprintf("Possible passive voice %q - prefer the active form", matched),
		})
	}

	return findings
}
