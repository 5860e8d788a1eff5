package rules

// Finding is a single problem reported by a rule against the text it was
// given. Start/End are byte offsets into that text. A Finding with no
// position information (Start == End == 0, empty Text) is valid: the engine
// treats it as feedback that cannot be anchored to a position.
type Finding struct {
	Text    string // matched text, empty when unknown
	Start   int
	End     int
	Message string
}

// Msg builds a position-less Finding from a bare message string.
// This is the legacy rule output form; the engine accepts it transparently.
func Msg(message string) Finding {
	return Finding{Message: message}
}

// Rule defines the contract for writing-quality rules. A rule is written
// once and may be invoked against a whole flattened document or against a
// single sentence; it must not assume either granularity.
type Rule interface {
	// ID returns the unique identifier, in "family/subrule" form.
	// The family (text before the slash) groups rules that report the
	// same human-visible complaint.
	ID() string

	// Description returns a human-readable description
	Description() string

	// Run analyzes the text and returns any findings
	Run(text string) []Finding
}

// Family returns the rule category family of an ID: the part before the
// first slash, or the whole ID when there is no slash.
func Family(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '/' {
			return id[:i]
		}
	}
	return id
}
