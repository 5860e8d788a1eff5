package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/sentences"
	"golang.org/x/net/html"
)

// Sentence is one sentence-level unit of a document. PlainText is its text;
// Fragment is the best-effort markup preserving its inline formatting.
// DocumentStart/DocumentEnd are byte offsets into the flattened document
// text, filled in by anchoring (not by the segmenter). Within a document,
// sentences are produced in non-decreasing DocumentStart order and their
// [DocumentStart, DocumentEnd) ranges never overlap.
type Sentence struct {
	Index         int
	PlainText     string
	Fragment      string
	DocumentStart int
	DocumentEnd   int
}

// Tokenizer is the sentence-boundary detection collaborator
type Tokenizer interface {
	Sentences(text string) []string
}

// UAX29Tokenizer splits sentences per Unicode UAX #29
type UAX29Tokenizer struct{}

// Sentences returns the UAX #29 sentence segments of text
func (UAX29Tokenizer) Sentences(text string) []string {
	var out []string
	iter := sentences.FromString(text)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// Segmenter splits a block's plain text into sentences and recovers each
// sentence's markup fragment.
type Segmenter struct {
	// Tokenizer is the primary boundary detector. When nil, the regex
	// fallback splitter is used.
	Tokenizer Tokenizer

	// MinLength is the trimmed rune count a candidate must exceed
	MinLength int

	// MinTokens is the minimum whitespace-separated token count
	MinTokens int

	// ShortBlockLimit is the block length (runes) under which the whole
	// block fragment is returned for every sentence
	ShortBlockLimit int
}

// NewSegmenter returns a Segmenter with the default tokenizer and thresholds
func NewSegmenter() *Segmenter {
	return &Segmenter{
		Tokenizer:       UAX29Tokenizer{},
		MinLength:       4,
		MinTokens:       2,
		ShortBlockLimit: 120,
	}
}

// Segment splits one block into sentences. Document offsets are zero here;
// anchoring against the flattened text fills them in.
func (s *Segmenter) Segment(b Block) []Sentence {
	candidates := s.split(b.PlainText)

	var kept []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if s.degenerate(c) {
			continue
		}
		kept = append(kept, c)
	}

	result := make([]Sentence, 0, len(kept))
	for _, text := range kept {
		result = append(result, Sentence{
			PlainText: text,
			Fragment:  s.fragmentFor(b, text, len(kept)),
		})
	}
	return result
}

// split runs the primary tokenizer, falling back to the regex splitter
func (s *Segmenter) split(text string) []string {
	if s.Tokenizer != nil {
		if parts := s.Tokenizer.Sentences(text); len(parts) > 0 {
			return parts
		}
	}
	return fallbackSplit(text)
}

// degenerate reports whether a candidate fails the minimum-length/token
// filter. Boundary detectors sometimes yield a bare article like "The" as
// its own sentence; discarding single-token and short fragments is
// mandatory.
func (s *Segmenter) degenerate(c string) bool {
	if utf8.RuneCountInString(c) <= s.MinLength {
		return true
	}
	if len(strings.Fields(c)) < s.MinTokens {
		return true
	}
	return !hasContent(c)
}

// fallbackBoundaryRe matches a sentence end: terminal punctuation, then
// whitespace, then an uppercase letter or digit opening the next sentence.
var fallbackBoundaryRe = regexp.MustCompile(`([.!?]+)(\s+)([\p{Lu}\p{N}])`)

// fallbackSplit splits on `[.!?]+` followed by whitespace and an uppercase
// or digit. Used when no tokenizer is available.
func fallbackSplit(text string) []string {
	var out []string
	start := 0

	for _, m := range fallbackBoundaryRe.FindAllStringSubmatchIndex(text, -1) {
		// group 2 end == start of the next sentence's first rune
		next := m[5]
		out = append(out, text[start:m[3]])
		start = next
	}
	out = append(out, text[start:])

	return out
}

// trailingPunct is stripped before prefix/suffix comparison
const trailingPunct = ".!?,;: \t…"

// fragmentFor recovers the markup fragment for one sentence of a block.
// Heuristics, in priority order: (a) single-sentence or short block keeps
// the whole block fragment; (b) a sentence that is a prefix or suffix of the
// block text (ignoring trailing punctuation) keeps the whole block fragment,
// accepting that formatting belonging to a sibling sentence may leak in;
// (c) otherwise the plain text is re-wrapped in a minimal container,
// sacrificing inline formatting. Interior sentences of formatted
// multi-sentence blocks can therefore lose or mis-attribute formatting;
// that trade-off is deliberate and not silently corrected.
func (s *Segmenter) fragmentFor(b Block, sentence string, total int) string {
	if total == 1 || utf8.RuneCountInString(b.PlainText) < s.ShortBlockLimit {
		return b.Fragment
	}

	bp := strings.TrimRight(b.PlainText, trailingPunct)
	sp := strings.TrimRight(sentence, trailingPunct)
	if sp != "" && (strings.HasPrefix(bp, sp) || strings.HasSuffix(bp, sp)) {
		return b.Fragment
	}

	return "<p>" + html.EscapeString(sentence) + "</p>"
}
