package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-dossier/internal/comparison"
	"github.com/jonathan/cv-dossier/internal/extraction"
	"github.com/jonathan/cv-dossier/internal/ingestion"
	"github.com/jonathan/cv-dossier/internal/rendering"
	"github.com/jonathan/cv-dossier/internal/schemas"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			"insufficient input",
			&extraction.InsufficientInputError{Length: 10, Minimum: 50},
			http.StatusBadRequest, "insufficient_input",
		},
		{
			"invalid comparison request",
			&comparison.InvalidRequestError{Message: "no candidates"},
			http.StatusBadRequest, "invalid_request",
		},
		{
			"too large",
			&ingestion.TooLargeError{Size: 11, Limit: 10},
			http.StatusRequestEntityTooLarge, "file_too_large",
		},
		{
			"unsupported type",
			&ingestion.UnsupportedTypeError{Declared: "image/png"},
			http.StatusUnsupportedMediaType, "unsupported_type",
		},
		{
			"corrupt content",
			&ingestion.CorruptContentError{Kind: ingestion.KindPDF},
			http.StatusUnprocessableEntity, "corrupt_content",
		},
		{
			"validation",
			&schemas.ValidationError{},
			http.StatusUnprocessableEntity, "validation_failed",
		},
		{
			"extraction failed",
			&extraction.FailedError{Message: "llm down"},
			http.StatusInternalServerError, "extraction_failed",
		},
		{
			"scoring failed",
			&comparison.ScoringError{Filename: "a.pdf", Message: "llm down"},
			http.StatusInternalServerError, "scoring_failed",
		},
		{
			"render failed",
			&rendering.RenderError{Message: "chrome missing"},
			http.StatusInternalServerError, "render_failed",
		},
		{
			"template failed",
			&rendering.TemplateError{Message: "bad template"},
			http.StatusInternalServerError, "render_failed",
		},
		{
			"unknown",
			errors.New("boom"),
			http.StatusInternalServerError, "internal_error",
		},
		{
			"wrapped domain error",
			&extraction.FailedError{Message: "llm", Cause: errors.New("quota")},
			http.StatusInternalServerError, "extraction_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, kind := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}
