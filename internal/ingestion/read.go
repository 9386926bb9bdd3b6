// Package ingestion turns uploaded documents into clean plain text.
// Binary parsing is delegated to format libraries; this package only
// routes by document kind and normalizes the result.
package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Kind identifies a supported document format.
type Kind string

// Supported document kinds.
const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindText Kind = "text"
	KindHTML Kind = "html"
)

// DefaultMaxBytes is the default upload size limit (10 MiB).
const DefaultMaxBytes int64 = 10 << 20

// MIME types accepted on upload. Generic binary is allowed and resolved by
// content sniffing, matching the reference upload behavior.
const (
	mimePDF    = "application/pdf"
	mimeDOCX   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText   = "text/plain"
	mimeHTML   = "text/html"
	mimeBinary = "application/octet-stream"
)

// Read extracts plain text from an uploaded document. The kind is resolved
// from the declared MIME type, the filename extension, and finally content
// sniffing. maxBytes <= 0 applies DefaultMaxBytes.
func Read(filename, declaredType string, data []byte, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if int64(len(data)) > maxBytes {
		return "", &TooLargeError{Size: int64(len(data)), Limit: maxBytes}
	}

	kind, err := DetectKind(filename, declaredType, data)
	if err != nil {
		return "", err
	}

	var text string
	switch kind {
	case KindPDF:
		text, err = readPDF(data)
	case KindDOCX:
		text, err = readDOCX(data)
	case KindHTML:
		text, err = readHTML(data)
	default:
		text, err = readPlainText(data)
	}
	if err != nil {
		return "", err
	}

	return CleanText(text), nil
}

// DetectKind resolves the document kind. Declared MIME type wins, then the
// filename extension, then content signatures.
func DetectKind(filename, declaredType string, data []byte) (Kind, error) {
	declared := strings.ToLower(strings.TrimSpace(declaredType))
	if idx := strings.Index(declared, ";"); idx >= 0 {
		declared = strings.TrimSpace(declared[:idx])
	}

	switch declared {
	case mimePDF:
		return KindPDF, nil
	case mimeDOCX:
		return KindDOCX, nil
	case mimeText:
		return KindText, nil
	case mimeHTML:
		return KindHTML, nil
	case "", mimeBinary:
		// Fall through to extension and sniffing.
	default:
		return "", &UnsupportedTypeError{Declared: declaredType, Filename: filename}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt":
		return KindText, nil
	case ".html", ".htm":
		return KindHTML, nil
	}

	if kind, ok := sniffKind(data); ok {
		return kind, nil
	}

	return "", &UnsupportedTypeError{Declared: declaredType, Filename: filename}
}

// sniffKind inspects content signatures: %PDF for PDF, PK (zip) for DOCX.
// Valid UTF-8 without NUL bytes is treated as plain text.
func sniffKind(data []byte) (Kind, bool) {
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return KindPDF, true
	}
	if bytes.HasPrefix(data, []byte("PK")) {
		return KindDOCX, true
	}

	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if looksLikeHTML(head) {
		return KindHTML, true
	}
	if len(data) > 0 && !bytes.ContainsRune(head, 0) {
		return KindText, true
	}
	return "", false
}

func looksLikeHTML(head []byte) bool {
	lowered := strings.ToLower(string(head))
	return strings.Contains(lowered, "<!doctype html") || strings.Contains(lowered, "<html")
}
