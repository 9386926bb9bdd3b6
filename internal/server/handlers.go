package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/jonathan/cv-dossier/internal/comparison"
	"github.com/jonathan/cv-dossier/internal/ingestion"
	"github.com/jonathan/cv-dossier/internal/schemas"
	"github.com/jonathan/cv-dossier/internal/types"
)

// extractTextRequest is the body of POST /api/v1/extract-text.
type extractTextRequest struct {
	CVText string `json:"cv_text"`
}

func (s *Server) uploadLimit() int64 {
	if s.maxUploadBytes > 0 {
		return s.maxUploadBytes
	}
	return ingestion.DefaultMaxBytes
}

// llmContext bounds an LLM-backed operation. calls is the number of model
// invocations the operation may make, so concurrent scoring of N candidates
// gets N times the per-call budget.
func (s *Server) llmContext(r *http.Request, calls int) (context.Context, context.CancelFunc) {
	if s.llmTimeout <= 0 {
		return r.Context(), func() {}
	}
	if calls < 1 {
		calls = 1
	}
	return context.WithTimeout(r.Context(), s.llmTimeout*time.Duration(calls))
}

// readUpload drains one multipart file header into memory, bounded by the
// upload limit.
func (s *Server) readUpload(header *multipart.FileHeader) (comparison.InputFile, error) {
	file, err := header.Open()
	if err != nil {
		return comparison.InputFile{}, fmt.Errorf("failed to open uploaded file %s: %w", header.Filename, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, s.uploadLimit()+1))
	if err != nil {
		return comparison.InputFile{}, fmt.Errorf("failed to read uploaded file %s: %w", header.Filename, err)
	}
	if int64(len(data)) > s.uploadLimit() {
		return comparison.InputFile{}, &ingestion.TooLargeError{Size: int64(len(data)), Limit: s.uploadLimit()}
	}

	return comparison.InputFile{
		Filename:     header.Filename,
		DeclaredType: header.Header.Get("Content-Type"),
		Data:         data,
	}, nil
}

// handleExtract extracts a dossier from an uploaded resume file.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.uploadLimit()); err != nil {
		s.badRequest(w, "expected multipart form data with a 'file' part")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		s.badRequest(w, "missing 'file' part")
		return
	}

	upload, err := s.readUpload(headers[0])
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	ctx, cancel := s.llmContext(r, 1)
	defer cancel()

	dossier, err := s.extractor.FromFile(ctx, upload.Filename, upload.DeclaredType, upload.Data)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, dossier)
}

// handleExtractText extracts a dossier from pasted resume text.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	var req extractTextRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.uploadLimit())).Decode(&req); err != nil {
		s.badRequest(w, "expected JSON body with a 'cv_text' field")
		return
	}

	ctx, cancel := s.llmContext(r, 1)
	defer cancel()

	dossier, err := s.extractor.FromText(ctx, req.CVText)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, dossier)
}

// handleCompare ranks uploaded candidate resumes against a mission document.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.uploadLimit()); err != nil {
		s.badRequest(w, "expected multipart form data with 'cvs' and 'mission' parts")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	cvHeaders := r.MultipartForm.File["cvs"]
	if len(cvHeaders) == 0 {
		s.badRequest(w, "missing 'cvs' parts: at least one candidate file is required")
		return
	}

	missionHeaders := r.MultipartForm.File["mission"]
	if len(missionHeaders) != 1 {
		s.badRequest(w, "exactly one 'mission' part is required")
		return
	}

	candidates := make([]comparison.InputFile, 0, len(cvHeaders))
	for _, header := range cvHeaders {
		upload, err := s.readUpload(header)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		candidates = append(candidates, upload)
	}

	mission, err := s.readUpload(missionHeaders[0])
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	ctx, cancel := s.llmContext(r, len(candidates))
	defer cancel()

	outcome, err := s.comparator.Compare(ctx, candidates, mission)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, outcome)
}

// decodeDossier reads and validates a dossier body for the artifact routes.
func (s *Server) decodeDossier(r *http.Request) (*types.Dossier, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.uploadLimit()))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return schemas.ValidateDossier(body)
}

// handleGeneratePDF renders a dossier to a PDF document.
func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	s.handleArtifact(w, r, "dossier.pdf", s.renderer.PDF)
}

// handleGenerateDeck renders a dossier to a 16:9 slide deck.
func (s *Server) handleGenerateDeck(w http.ResponseWriter, r *http.Request) {
	s.handleArtifact(w, r, "dossier-deck.pdf", s.renderer.Deck)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request, filename string, render func(ctx context.Context, d *types.Dossier) ([]byte, error)) {
	dossier, err := s.decodeDossier(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	ctx := r.Context()
	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}

	artifact, err := render(ctx, dossier)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact); err != nil {
		s.logger.Error("writing artifact response")
	}
}
