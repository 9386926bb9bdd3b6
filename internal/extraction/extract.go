// Package extraction turns raw resume text into a structured competency
// dossier using LLM extraction.
package extraction

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/cv-dossier/internal/ingestion"
	"github.com/jonathan/cv-dossier/internal/llm"
	"github.com/jonathan/cv-dossier/internal/prompts"
	"github.com/jonathan/cv-dossier/internal/schemas"
	"github.com/jonathan/cv-dossier/internal/types"
)

// MinTextChars is the minimum number of non-whitespace-trimmed characters a
// resume must contain before an extraction is attempted.
const MinTextChars = 50

// Extractor produces dossiers from resume content.
type Extractor struct {
	client   llm.Client
	minChars int
	maxBytes int64
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithMinChars overrides the minimum text length. Values <= 0 keep the default.
func WithMinChars(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minChars = n
		}
	}
}

// WithMaxBytes overrides the upload size limit passed to ingestion.
func WithMaxBytes(n int64) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxBytes = n
		}
	}
}

// NewExtractor builds an Extractor around an LLM client.
func NewExtractor(client llm.Client, opts ...Option) *Extractor {
	e := &Extractor{
		client:   client,
		minChars: MinTextChars,
		maxBytes: ingestion.DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromText extracts a structured dossier from cleaned resume text.
// All failures after the length check are all-or-nothing: the caller never
// receives a partially populated dossier.
func (e *Extractor) FromText(ctx context.Context, text string) (*types.Dossier, error) {
	trimmed := strings.TrimSpace(text)
	// Rune count, not byte length: accented text must not pass the threshold
	// early just because its UTF-8 encoding is longer.
	length := utf8.RuneCountInString(trimmed)
	if length < e.minChars {
		return nil, &InsufficientInputError{Length: length, Minimum: e.minChars}
	}

	prompt := buildStructuringPrompt(trimmed)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &FailedError{
			Message: "failed to generate dossier from LLM",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	dossier, err := schemas.ValidateDossier([]byte(responseText))
	if err != nil {
		return nil, &FailedError{
			Message: "LLM response is not a valid dossier",
			Cause:   err,
		}
	}

	return dossier, nil
}

// FromFile reads an uploaded resume file and extracts a dossier from it.
// Ingestion errors pass through unwrapped so callers can map them to the
// right status codes.
func (e *Extractor) FromFile(ctx context.Context, filename, declaredType string, data []byte) (*types.Dossier, error) {
	text, err := ingestion.Read(filename, declaredType, data, e.maxBytes)
	if err != nil {
		return nil, err
	}
	return e.FromText(ctx, text)
}

// buildStructuringPrompt constructs the prompt for dossier extraction.
func buildStructuringPrompt(resumeText string) string {
	template := prompts.MustGet("extraction.json", "structure-dossier")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}
