package markup

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// MarkdownDecoder converts markdown input into the normalized markup tree.
// The markdown is rendered to HTML first so that every input format ends up
// in the same coordinate space.
type MarkdownDecoder struct{}

// CanDecode returns true if this decoder can handle the file
func (d *MarkdownDecoder) CanDecode(path string) bool {
	return GetFormat(path) == FormatMarkdown
}

// Decode parses markdown content into a Document
func (d *MarkdownDecoder) Decode(path string, content []byte) (*Document, error) {
	frontmatter, body := ParseFrontmatter(content)

	var buf bytes.Buffer
	if err := goldmark.Convert(body, &buf); err != nil {
		return nil, err
	}

	root, err := parseTree(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &Document{
		Root:        root,
		Path:        path,
		Format:      FormatMarkdown,
		Frontmatter: frontmatter,
	}, nil
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters.
// Returns the parsed frontmatter and the remaining content without frontmatter.
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	if strings.HasPrefix(remaining, "\n") {
		remaining = remaining[1:]
	}

	return frontmatter, []byte(remaining)
}
