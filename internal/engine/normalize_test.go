package engine

import (
	"strings"
	"testing"
)

func TestFlattenJoinsBlocksWithSingleSpace(t *testing.T) {
	blocks := []Block{
		{PlainText: "First block.", Order: 0},
		{PlainText: "Second block.", Order: 1},
	}

	flat := Flatten(blocks)

	if flat.Text != "First block. Second block." {
		t.Errorf("Text = %q", flat.Text)
	}
	if got := flat.BlockStart(0); got != 0 {
		t.Errorf("BlockStart(0) = %d, want 0", got)
	}
	if got := flat.BlockStart(1); got != 13 {
		t.Errorf("BlockStart(1) = %d, want 13", got)
	}
	if got := flat.BlockStart(5); got != -1 {
		t.Errorf("BlockStart(5) = %d, want -1", got)
	}
}

func TestAnchorForwardCursorDistinguishesRepeatedSentences(t *testing.T) {
	text := "Click Save to continue."
	blocks := []Block{
		{PlainText: text, Order: 0},
		{PlainText: text, Order: 1},
	}
	flat := Flatten(blocks)

	sents := flat.Anchor([][]Sentence{
		{{PlainText: text}},
		{{PlainText: text}},
	})

	if len(sents) != 2 {
		t.Fatalf("Anchor() = %d sentences, want 2", len(sents))
	}
	if sents[0].DocumentStart != 0 {
		t.Errorf("first DocumentStart = %d, want 0", sents[0].DocumentStart)
	}
	if sents[1].DocumentStart <= sents[0].DocumentStart {
		t.Errorf("second occurrence anchored at %d, not after first (%d)",
			sents[1].DocumentStart, sents[0].DocumentStart)
	}
	if sents[1].DocumentStart != len(text)+1 {
		t.Errorf("second DocumentStart = %d, want %d", sents[1].DocumentStart, len(text)+1)
	}
}

func TestAnchorRangesAreSortedAndNonOverlapping(t *testing.T) {
	blocks := []Block{
		{PlainText: "One sentence here. Another one follows.", Order: 0},
		{PlainText: "Third block sentence.", Order: 1},
	}
	flat := Flatten(blocks)

	sents := flat.Anchor([][]Sentence{
		{{PlainText: "One sentence here."}, {PlainText: "Another one follows."}},
		{{PlainText: "Third block sentence."}},
	})

	for i := 1; i < len(sents); i++ {
		if sents[i].DocumentStart < sents[i-1].DocumentEnd {
			t.Errorf("sentence %d range [%d,%d) overlaps previous end %d",
				i, sents[i].DocumentStart, sents[i].DocumentEnd, sents[i-1].DocumentEnd)
		}
		if sents[i].DocumentStart < sents[i-1].DocumentStart {
			t.Errorf("sentence %d not in DocumentStart order", i)
		}
	}
	for i, s := range sents {
		if s.Index != i {
			t.Errorf("sentence %d has Index %d", i, s.Index)
		}
	}
}

func TestAnchorCoverageIsSubsequenceOfFlatText(t *testing.T) {
	blocks := []Block{
		{PlainText: "Alpha beta gamma. Delta epsilon zeta.", Order: 0},
		{PlainText: "Eta theta iota.", Order: 1},
	}
	flat := Flatten(blocks)

	sents := flat.Anchor([][]Sentence{
		{{PlainText: "Alpha beta gamma."}, {PlainText: "Delta epsilon zeta."}},
		{{PlainText: "Eta theta iota."}},
	})

	joined := make([]string, 0, len(sents))
	for _, s := range sents {
		joined = append(joined, s.PlainText)
	}
	want := strings.Join(strings.Fields(strings.Join(joined, " ")), " ")
	have := strings.Join(strings.Fields(flat.Text), " ")
	if want != have {
		t.Errorf("sentence concatenation %q not whitespace-equal to flat text %q", want, have)
	}
}

func TestAnchorSyntheticOffsetWhenTextNotFound(t *testing.T) {
	blocks := []Block{{PlainText: "Actual block content here.", Order: 0}}
	flat := Flatten(blocks)

	// Tokenizer output diverged from the flattened text: still anchored,
	// immediately after the previous cursor position, run not aborted.
	sents := flat.Anchor([][]Sentence{
		{{PlainText: "Actual block content here."}, {PlainText: "Phantom sentence text."}},
	})

	if len(sents) != 2 {
		t.Fatalf("Anchor() = %d sentences, want 2", len(sents))
	}
	if sents[1].DocumentStart != sents[0].DocumentEnd {
		t.Errorf("synthetic DocumentStart = %d, want previous end %d",
			sents[1].DocumentStart, sents[0].DocumentEnd)
	}
}
