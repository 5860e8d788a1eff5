package rules

import (
	"strings"
	"testing"
)

func TestFamily(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"length/long-sentence", "length"},
		{"style/passive-voice", "style"},
		{"bare", "bare"},
		{"a/b/c", "a"},
	}

	for _, tt := range tests {
		if got := Family(tt.id); got != tt.want {
			t.Errorf("Family(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestRegistryWithout(t *testing.T) {
	reg := DefaultRegistry()
	total := len(reg.Rules())

	filtered := reg.Without([]string{"style"})
	for _, r := range filtered.Rules() {
		if Family(r.ID()) == "style" {
			t.Errorf("rule %q not filtered by family", r.ID())
		}
	}
	if len(filtered.Rules()) >= total {
		t.Error("Without() removed nothing")
	}

	byID := reg.Without([]string{"length/long-sentence"})
	if byID.Get("length/long-sentence") != nil {
		t.Error("rule not filtered by exact ID")
	}
}

func TestRegistryOrderIsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&WeaselWordsRule{})
	reg.Register(&ClicheRule{})

	ids := []string{}
	for _, r := range reg.Rules() {
		ids = append(ids, r.ID())
	}
	if ids[0] != "clarity/weasel-words" || ids[1] != "clarity/cliche" {
		t.Errorf("rules out of registration order: %v", ids)
	}
}

func TestLongSentenceRule(t *testing.T) {
	r := &LongSentenceRule{MaxWords: 5}

	text := "Short one here. This sentence goes on and on with far too many words in it."
	findings := r.Run(text)

	if len(findings) != 1 {
		t.Fatalf("Run() = %d findings, want 1", len(findings))
	}
	f := findings[0]
	if !strings.HasPrefix(f.Text, "This sentence") {
		t.Errorf("matched %q, want the long sentence", f.Text)
	}
	if text[f.Start:f.End] != f.Text {
		t.Errorf("offsets [%d,%d) do not index the matched text", f.Start, f.End)
	}
}

func TestWeaselWordsRuleOffsets(t *testing.T) {
	r := &WeaselWordsRule{}

	text := "This is very important and really urgent."
	findings := r.Run(text)

	if len(findings) != 2 {
		t.Fatalf("Run() = %d findings, want 2", len(findings))
	}
	for _, f := range findings {
		if text[f.Start:f.End] != f.Text {
			t.Errorf("offsets [%d,%d) = %q, want %q", f.Start, f.End, text[f.Start:f.End], f.Text)
		}
	}
}

func TestPassiveVoiceRule(t *testing.T) {
	r := &PassiveVoiceRule{}

	tests := []struct {
		text string
		want int
	}{
		{"The document was written by the team.", 1},
		{"The team wrote the document.", 0},
		{"The door is open now always.", 0}, // exception list
	}

	for _, tt := range tests {
		if got := len(r.Run(tt.text)); got != tt.want {
			t.Errorf("Run(%q) = %d findings, want %d", tt.text, got, tt.want)
		}
	}
}

func TestRepeatedWordRule(t *testing.T) {
	r := &RepeatedWordRule{}

	tests := []struct {
		text string
		want int
	}{
		{"Review the the draft.", 1},
		{"Review The the draft.", 1}, // case-insensitive
		{"Review the draft.", 0},
		{"It is big. Big things matter.", 0}, // punctuation between
	}

	for _, tt := range tests {
		findings := r.Run(tt.text)
		if len(findings) != tt.want {
			t.Errorf("Run(%q) = %d findings, want %d", tt.text, len(findings), tt.want)
			continue
		}
		for _, f := range findings {
			if tt.text[f.Start:f.End] != f.Text {
				t.Errorf("offsets do not index matched text: %q", f.Text)
			}
		}
	}
}

func TestClicheRule(t *testing.T) {
	r := &ClicheRule{}

	findings := r.Run("At the end of the day, ship it.")
	if len(findings) != 1 {
		t.Fatalf("Run() = %d findings, want 1", len(findings))
	}
	if findings[0].Start != 0 {
		t.Errorf("Start = %d, want 0", findings[0].Start)
	}
}

func TestAdverbRuleExceptions(t *testing.T) {
	r := &AdverbRule{}

	if got := len(r.Run("Only the family came early.")); got != 0 {
		t.Errorf("exception words flagged: %d findings", got)
	}
	if got := len(r.Run("He walked quickly away.")); got != 1 {
		t.Errorf("Run() = %d findings, want 1", got)
	}
}

func TestLegacyAdapter(t *testing.T) {
	r := Legacy("legacy/demo", "demo", func(text string) []string {
		if strings.Contains(text, "bad") {
			return []string{"found it", ""}
		}
		return nil
	})

	if r.ID() != "legacy/demo" {
		t.Errorf("ID() = %q", r.ID())
	}

	findings := r.Run("some bad text")
	if len(findings) != 1 {
		t.Fatalf("Run() = %d findings, want 1 (empty messages dropped)", len(findings))
	}
	f := findings[0]
	if f.Start != 0 || f.End != 0 || f.Text != "" {
		t.Errorf("legacy finding carries position data: %+v", f)
	}

	if got := r.Run("fine text"); len(got) != 0 {
		t.Errorf("Run() = %d findings, want 0", len(got))
	}
}

func TestRoughSentenceSpans(t *testing.T) {
	text := "First here. Second there! Third one?"
	spans := roughSentenceSpans(text)

	if len(spans) != 3 {
		t.Fatalf("roughSentenceSpans() = %d spans, want 3", len(spans))
	}
	if spans[0][0] != 0 {
		t.Errorf("first span starts at %d", spans[0][0])
	}
	if spans[2][1] != len(text) {
		t.Errorf("last span ends at %d, want %d", spans[2][1], len(text))
	}
}
