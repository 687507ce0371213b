package source

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFSource extracts page text from a PDF travel guide.
type PDFSource struct {
	Path string
}

// Text concatenates the plain text of every page in order, newline
// separated. Pages that cannot be decoded are skipped rather than failing
// the whole document.
func (s *PDFSource) Text() (string, error) {
	f, r, err := pdf.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}
