package ingestion

import "fmt"

// UnsupportedTypeError indicates the uploaded document type is not one the
// pipeline can extract text from.
type UnsupportedTypeError struct {
	Declared string
	Filename string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Declared != "" {
		return fmt.Sprintf("unsupported file type: %s", e.Declared)
	}
	return fmt.Sprintf("unsupported file type for %q", e.Filename)
}

// TooLargeError indicates the upload exceeds the configured size limit.
type TooLargeError struct {
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes (limit %d)", e.Size, e.Limit)
}

// CorruptContentError indicates the document type was recognized but its
// content could not be read. Distinct from UnsupportedTypeError so callers
// can report "bad file" separately from "wrong kind of file".
type CorruptContentError struct {
	Kind  Kind
	Cause error
}

func (e *CorruptContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot extract text from %s content: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("cannot extract text from %s content", e.Kind)
}

func (e *CorruptContentError) Unwrap() error {
	return e.Cause
}
