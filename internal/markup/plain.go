package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var blankLineRe = regexp.MustCompile(`\n[ \t]*\n`)

// PlainDecoder wraps plain text into the normalized markup tree.
// Paragraphs are delimited by blank lines.
type PlainDecoder struct{}

// CanDecode returns true if this decoder can handle the file
func (d *PlainDecoder) CanDecode(path string) bool {
	f := GetFormat(path)
	return f == FormatPlain || f == FormatUnknown
}

// Decode wraps each blank-line-delimited paragraph in a <p> element
func (d *PlainDecoder) Decode(path string, content []byte) (*Document, error) {
	var sb strings.Builder
	for _, para := range blankLineRe.Split(string(content), -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		sb.WriteString("<p>")
		sb.WriteString(html.EscapeString(para))
		sb.WriteString("</p>\n")
	}

	root, err := parseTree([]byte(sb.String()))
	if err != nil {
		return nil, err
	}

	return &Document{
		Root:   root,
		Path:   path,
		Format: FormatPlain,
	}, nil
}
