package engine

import "strings"

// FlatDocument is the flattened plain-text view of a document: all block
// texts joined by single spaces. It is the coordinate space document-scoped
// rules receive. blockStarts maps block order to the block's starting byte
// offset in Text (the block offset -> document offset conversion).
type FlatDocument struct {
	Text        string
	blockStarts []int
}

// Flatten concatenates block texts into the flattened document string,
// recording each block's starting offset.
func Flatten(blocks []Block) *FlatDocument {
	var sb strings.Builder
	starts := make([]int, len(blocks))

	for i, b := range blocks {
		if i > 0 {
			sb.WriteString(" ")
		}
		starts[i] = sb.Len()
		sb.WriteString(b.PlainText)
	}

	return &FlatDocument{
		Text:        sb.String(),
		blockStarts: starts,
	}
}

// BlockStart converts a block order to its document offset
func (f *FlatDocument) BlockStart(order int) int {
	if order < 0 || order >= len(f.blockStarts) {
		return -1
	}
	return f.blockStarts[order]
}

// Anchor resolves every sentence's DocumentStart/DocumentEnd against the
// flattened text and assigns global indices. perBlock holds each block's
// sentences in block order.
//
// The search cursor only moves forward: a document can contain the same
// sentence text twice, and a first-occurrence search would re-anchor the
// later sentence onto the earlier position. A sentence that cannot be found
// from the cursor onward (possible when tokenization inputs diverge) gets a
// synthetic offset immediately after the previous sentence's end; anchoring
// never aborts the run.
func (f *FlatDocument) Anchor(perBlock [][]Sentence) []Sentence {
	var out []Sentence
	cursor := 0

	for _, group := range perBlock {
		for _, s := range group {
			start := cursor
			if cursor <= len(f.Text) {
				if i := strings.Index(f.Text[cursor:], s.PlainText); i >= 0 {
					start = cursor + i
				}
			}
			end := start + len(s.PlainText)

			s.Index = len(out)
			s.DocumentStart = start
			s.DocumentEnd = end
			out = append(out, s)

			cursor = end
		}
	}

	return out
}
