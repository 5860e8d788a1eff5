package engine

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/pthm/prosecheck/internal/markup"
)

// Block is one top-level text-bearing markup element: the unit of sentence
// segmentation. PlainText is the space-joined descendant text; Fragment is
// the element's original markup, kept verbatim for display.
type Block struct {
	PlainText string
	Fragment  string
	Order     int
}

// blockTags are the element kinds that qualify as blocks
var blockTags = map[string]bool{
	"p":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"blockquote": true,
	"div":        true,
}

// skipTags never contribute text
var skipTags = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

// ExtractBlocks walks the markup tree depth-first and returns the ordered
// blocks. An element is selected only when no block-level ancestor was
// already selected, so nested structure is never double-counted. A generic
// container (<div>) qualifies only when no block-level element sits beneath
// it; otherwise its inner paragraphs are the blocks. Blocks whose text is
// empty or punctuation-only are dropped. Pure function of the tree.
func ExtractBlocks(doc *markup.Document) []Block {
	if doc == nil || doc.Root == nil {
		return nil
	}

	var blocks []Block

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipTags[n.Data] {
				return
			}
			if blockTags[n.Data] && (n.Data != "div" || !hasBlockDescendant(n)) {
				text := flattenText(n)
				if hasContent(text) {
					blocks = append(blocks, Block{
						PlainText: text,
						Fragment:  markup.RenderFragment(n),
						Order:     len(blocks),
					})
				}
				return // descendants are covered by this block
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Root)

	return blocks
}

// hasBlockDescendant reports whether any block-level element sits below n
func hasBlockDescendant(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.Data] {
			return true
		}
		if hasBlockDescendant(c) {
			return true
		}
	}
	return false
}

// flattenText joins all descendant text with single spaces, so inline
// elements never concatenate without a separator.
func flattenText(n *html.Node) string {
	var parts []string

	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, strings.Fields(t)...)
			}
			return
		}
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)

	return strings.Join(parts, " ")
}

// hasContent reports whether text contains at least one letter or digit
func hasContent(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
