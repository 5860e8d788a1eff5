package engine

import (
	"strings"
	"testing"
)

func TestSegmentKeepsShortTwoTokenSentence(t *testing.T) {
	s := NewSegmenter()

	got := s.Segment(Block{PlainText: "Enable autostart.", Fragment: "<p>Enable autostart.</p>"})

	if len(got) != 1 {
		t.Fatalf("Segment() = %d sentences, want 1", len(got))
	}
	if got[0].PlainText != "Enable autostart." {
		t.Errorf("PlainText = %q, want %q", got[0].PlainText, "Enable autostart.")
	}
}

func TestSegmentFiltersDegenerateFragments(t *testing.T) {
	s := NewSegmenter()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"single short token", "The.", 0},
		{"punctuation only", "!!! ... ???", 0},
		{"empty", "", 0},
		{"one real sentence", "This is a sentence.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Segment(Block{PlainText: tt.text})
			if len(got) != tt.want {
				t.Errorf("Segment(%q) = %d sentences, want %d", tt.text, len(got), tt.want)
			}
		})
	}
}

func TestSegmentDropsBareArticleBoundary(t *testing.T) {
	s := NewSegmenter()

	got := s.Segment(Block{PlainText: "The. Document follows."})

	for _, sent := range got {
		if strings.TrimSpace(sent.PlainText) == "The" || strings.TrimSpace(sent.PlainText) == "The." {
			t.Errorf("degenerate fragment %q survived segmentation", sent.PlainText)
		}
	}
}

func TestFallbackSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"two sentences",
			"First point here. Second point here.",
			[]string{"First point here.", "Second point here."},
		},
		{
			"boundary needs uppercase or digit",
			"See fig. a for details.",
			[]string{"See fig. a for details."},
		},
		{
			"digit starts a sentence",
			"Step one done! 2 more remain.",
			[]string{"Step one done!", "2 more remain."},
		},
		{
			"multiple terminators",
			"Wait... Really now?",
			[]string{"Wait...", "Really now?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackSplit(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("fallbackSplit(%q) = %q, want %q", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentWithoutTokenizerUsesFallback(t *testing.T) {
	s := NewSegmenter()
	s.Tokenizer = nil

	got := s.Segment(Block{PlainText: "First point here. Second point here."})

	if len(got) != 2 {
		t.Fatalf("Segment() = %d sentences, want 2", len(got))
	}
}

func TestFragmentForWholeBlockWhenSingleSentence(t *testing.T) {
	s := NewSegmenter()
	b := Block{
		PlainText: "Click the bold button.",
		Fragment:  "<p>Click the <b>bold</b> button.</p>",
	}

	got := s.Segment(b)

	if len(got) != 1 {
		t.Fatalf("Segment() = %d sentences, want 1", len(got))
	}
	if got[0].Fragment != b.Fragment {
		t.Errorf("Fragment = %q, want whole block fragment", got[0].Fragment)
	}
}

func TestFragmentForShortMultiSentenceBlock(t *testing.T) {
	s := NewSegmenter()
	b := Block{
		PlainText: "Open the menu. Pick an item.",
		Fragment:  "<p>Open the <i>menu</i>. Pick an item.</p>",
	}

	got := s.Segment(b)

	if len(got) != 2 {
		t.Fatalf("Segment() = %d sentences, want 2", len(got))
	}
	// Block is under the short-block limit: both sentences keep the block
	// fragment even though formatting may belong to the other sentence.
	for i, sent := range got {
		if sent.Fragment != b.Fragment {
			t.Errorf("sentence %d Fragment = %q, want block fragment", i, sent.Fragment)
		}
	}
}

func TestFragmentForInteriorSentenceFallsBackToRewrap(t *testing.T) {
	s := NewSegmenter()
	s.ShortBlockLimit = 10 // force the prefix/suffix path

	first := "Alpha begins the block with enough words."
	middle := "Middle sentence gets plain rewrap treatment."
	last := "Omega closes the block out properly."
	b := Block{
		PlainText: first + " " + middle + " " + last,
		Fragment:  "<p><b>" + first + "</b> " + middle + " " + last + "</p>",
	}

	got := s.Segment(b)
	if len(got) != 3 {
		t.Fatalf("Segment() = %d sentences, want 3", len(got))
	}

	if got[0].Fragment != b.Fragment {
		t.Errorf("prefix sentence should keep block fragment, got %q", got[0].Fragment)
	}
	if got[2].Fragment != b.Fragment {
		t.Errorf("suffix sentence should keep block fragment, got %q", got[2].Fragment)
	}
	if got[1].Fragment != "<p>"+middle+"</p>" {
		t.Errorf("interior sentence Fragment = %q, want minimal rewrap", got[1].Fragment)
	}
}
