package extraction

import "fmt"

// InsufficientInputError indicates the resume text is too short to be worth
// sending to the model.
type InsufficientInputError struct {
	Length  int
	Minimum int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("resume text too short: %d characters (minimum %d)", e.Length, e.Minimum)
}

// FailedError represents a failure to obtain a structured dossier from the model.
type FailedError struct {
	Message string
	Cause   error
}

func (e *FailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *FailedError) Unwrap() error {
	return e.Cause
}
