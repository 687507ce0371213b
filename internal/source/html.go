package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLSource extracts paragraph text from an HTML export of the guide.
type HTMLSource struct {
	Path string
}

// Text pulls the text of every non-empty paragraph, one per line.
func (s *HTMLSource) Text() (string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return "", fmt.Errorf("opening HTML file: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	return ExtractText(doc), nil
}

// ExtractText pulls plaintext lines from a goquery document.
func ExtractText(doc *goquery.Document) string {
	var lines []string

	doc.Find("p, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	return strings.Join(lines, "\n")
}
