// Package schemas provides JSON Schema validation and defaulting for dossier data.
//
// The dossier schema is deliberately permissive about absence: no field is
// required, and every missing field is filled with a deterministic default
// after validation. The schema is strict about shape: a sequence where a
// scalar was expected (or vice versa) is a ValidationError, which is a
// different failure mode from a missing field and is reported with the
// offending field path.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/cv-dossier/internal/types"
)

//go:embed dossier.schema.json
var dossierSchemaJSON []byte

// ValidationError represents a structural validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("dossier validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ValidateDossier validates raw structured JSON against the dossier schema
// and returns a fully defaulted Dossier. Missing optional fields never fail;
// wrong types do. The returned Dossier has every optional scalar as "" and
// every optional sequence as a non-nil empty slice.
func ValidateDossier(raw []byte) (*types.Dossier, error) {
	schemaLoader := gojsonschema.NewBytesLoader(dossierSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// gojsonschema only errors here on unparseable input (the schema
		// itself is embedded and known-good).
		return nil, &ValidationError{Errors: []FieldError{
			{Field: "(document)", Message: fmt.Sprintf("invalid JSON: %v", err)},
		}}
	}

	if !result.Valid() {
		fieldErrors := make([]FieldError, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return nil, &ValidationError{Errors: fieldErrors}
	}

	var dossier types.Dossier
	if err := json.Unmarshal(raw, &dossier); err != nil {
		return nil, &ValidationError{Errors: []FieldError{
			{Field: "(document)", Message: fmt.Sprintf("failed to decode: %v", err)},
		}}
	}

	dossier.ApplyDefaults()
	return &dossier, nil
}
