package rules

// legacyRule wraps the older rule form: a bare function returning message
// strings with no position information.
type legacyRule struct {
	id          string
	description string
	fn          func(text string) []string
}

// Legacy adapts a message-only rule function to the Rule interface.
// Every returned message becomes a position-less Finding.
func Legacy(id, description string, fn func(text string) []string) Rule {
	return &legacyRule{id: id, description: description, fn: fn}
}

func (r *legacyRule) ID() string {
	return r.id
}

func (r *legacyRule) Description() string {
	return r.description
}

func (r *legacyRule) Run(text string) []Finding {
	var findings []Finding
	for _, msg := range r.fn(text) {
		if msg == "" {
			continue
		}
		findings = append(findings, Msg(msg))
	}
	return findings
}
