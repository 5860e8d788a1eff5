package markup

// HTMLDecoder accepts input that is already normalized HTML
type HTMLDecoder struct{}

// CanDecode returns true if this decoder can handle the file
func (d *HTMLDecoder) CanDecode(path string) bool {
	return GetFormat(path) == FormatHTML
}

// Decode parses HTML content into a Document
func (d *HTMLDecoder) Decode(path string, content []byte) (*Document, error) {
	root, err := parseTree(content)
	if err != nil {
		return nil, err
	}

	return &Document{
		Root:   root,
		Path:   path,
		Format: FormatHTML,
	}, nil
}
