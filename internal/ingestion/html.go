package ingestion

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// readHTML parses an HTML document and returns its visible body text.
// Script, style and navigation noise is removed before extraction.
func readHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &CorruptContentError{Kind: KindHTML, Cause: err}
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &CorruptContentError{Kind: KindHTML}
	}
	return text, nil
}
