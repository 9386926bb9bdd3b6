package comparison

import "fmt"

// InvalidRequestError indicates a malformed comparison request (no candidates
// or no mission document).
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid comparison request: %s", e.Message)
}

// ScoringError represents a failure to score a candidate. The first scoring
// failure aborts the whole comparison.
type ScoringError struct {
	Filename string
	Message  string
	Cause    error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring failed for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring failed for %s: %s", e.Filename, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
