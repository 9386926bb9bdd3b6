package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/cv-dossier/internal/comparison"
	"github.com/jonathan/cv-dossier/internal/extraction"
	"github.com/jonathan/cv-dossier/internal/ingestion"
	"github.com/jonathan/cv-dossier/internal/rendering"
	"github.com/jonathan/cv-dossier/internal/schemas"
)

// errorBody is the stable error response shape.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// mapError translates a domain error into an HTTP status and stable error kind.
// Nothing is swallowed: unrecognized errors surface as internal_error.
func mapError(err error) (status int, kind string) {
	var (
		insufficientErr *extraction.InsufficientInputError
		invalidReqErr   *comparison.InvalidRequestError
		tooLargeErr     *ingestion.TooLargeError
		unsupportedErr  *ingestion.UnsupportedTypeError
		corruptErr      *ingestion.CorruptContentError
		validationErr   *schemas.ValidationError
		extractionErr   *extraction.FailedError
		scoringErr      *comparison.ScoringError
		templateErr     *rendering.TemplateError
		renderErr       *rendering.RenderError
	)

	switch {
	case errors.As(err, &insufficientErr):
		return http.StatusBadRequest, "insufficient_input"
	case errors.As(err, &invalidReqErr):
		return http.StatusBadRequest, "invalid_request"
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge, "file_too_large"
	case errors.As(err, &unsupportedErr):
		return http.StatusUnsupportedMediaType, "unsupported_type"
	case errors.As(err, &corruptErr):
		return http.StatusUnprocessableEntity, "corrupt_content"
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, "validation_failed"
	case errors.As(err, &extractionErr):
		return http.StatusInternalServerError, "extraction_failed"
	case errors.As(err, &scoringErr):
		return http.StatusInternalServerError, "scoring_failed"
	case errors.As(err, &templateErr), errors.As(err, &renderErr):
		return http.StatusInternalServerError, "render_failed"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
