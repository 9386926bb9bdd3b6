package ingestion

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// readPDF extracts text from PDF bytes, page by page. Pages that fail to
// decode are skipped; a PDF that yields no text at all is reported as
// corrupt (likely a scanned document).
func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptContentError{Kind: KindPDF, Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", &CorruptContentError{Kind: KindPDF}
	}
	return result, nil
}

// readDOCX extracts text from a Word document in memory.
func readDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &CorruptContentError{Kind: KindDOCX, Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	text := strings.TrimSpace(stripDocxTags(content))
	if text == "" {
		return "", &CorruptContentError{Kind: KindDOCX}
	}
	return text, nil
}

// stripDocxTags flattens the WordprocessingML fragment returned by the docx
// library into plain text, turning paragraph boundaries into newlines.
func stripDocxTags(content string) string {
	replaced := strings.ReplaceAll(content, "</w:p>", "\n")

	var sb strings.Builder
	inTag := false
	for _, r := range replaced {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// readPlainText decodes raw text bytes, replacing invalid UTF-8 sequences.
func readPlainText(data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", &CorruptContentError{Kind: KindText}
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
