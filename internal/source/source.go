// Package source provides the text-source collaborators that feed the
// parsing pipeline. The pipeline only ever sees plain text; how that text
// was produced (PDF, HTML export, plain file) is decided here.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source yields the full extracted plain text of a guide document,
// page-order preserving with newline separation.
type Source interface {
	Text() (string, error)
}

// ForFile picks a Source implementation from the file extension. Anything
// that is not a PDF or HTML file is read as plain text.
func ForFile(path string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFSource{Path: path}
	case ".html", ".htm":
		return &HTMLSource{Path: path}
	default:
		return &TextSource{Path: path}
	}
}

// TextSource reads a plain text file verbatim.
type TextSource struct {
	Path string
}

// Text returns the file contents.
func (s *TextSource) Text() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}
