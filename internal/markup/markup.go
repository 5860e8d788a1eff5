package markup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ErrUnsupportedFormat is returned when no decoder can handle the input.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Format identifies the source format of a document
type Format int

const (
	FormatUnknown Format = iota
	FormatMarkdown
	FormatHTML
	FormatPlain
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	case FormatPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Document is the normalized markup representation every decoder produces.
// The analysis engine only ever sees this tree; it never touches raw bytes.
type Document struct {
	Root        *html.Node
	Path        string
	Format      Format
	Frontmatter map[string]interface{} // YAML frontmatter from markdown input
}

// Decoder turns raw file content into a normalized Document
type Decoder interface {
	Decode(path string, content []byte) (*Document, error)
	CanDecode(path string) bool
}

// Decode reads a file and decodes it with the decoder matching its extension
func Decode(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return DecodeBytes(path, content)
}

// DecodeBytes decodes in-memory content using the decoder for the path's extension
func DecodeBytes(path string, content []byte) (*Document, error) {
	dec := decoderFor(path)
	if dec == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	doc, err := dec.Decode(path, content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", GetFormat(path), err)
	}
	return doc, nil
}

// decoderFor returns the decoder for a file path, or nil when unsupported
func decoderFor(path string) Decoder {
	switch GetFormat(path) {
	case FormatMarkdown:
		return &MarkdownDecoder{}
	case FormatHTML:
		return &HTMLDecoder{}
	case FormatPlain:
		return &PlainDecoder{}
	default:
		return nil
	}
}

// GetFormat returns the Format for a given path
func GetFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".txt", ".text", "":
		return FormatPlain
	default:
		return FormatUnknown
	}
}

// RenderFragment renders a node subtree back to markup text.
// Used to retain each block's original formatting verbatim.
func RenderFragment(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// parseTree parses normalized HTML into a node tree
func parseTree(content []byte) (*html.Node, error) {
	root, err := html.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return root, nil
}
