// Package server provides the HTTP REST API for the dossier service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/cv-dossier/internal/comparison"
	"github.com/jonathan/cv-dossier/internal/server/ratelimit"
	"github.com/jonathan/cv-dossier/internal/types"
)

// Extractor produces dossiers from uploaded content.
type Extractor interface {
	FromText(ctx context.Context, text string) (*types.Dossier, error)
	FromFile(ctx context.Context, filename, declaredType string, data []byte) (*types.Dossier, error)
}

// Comparator ranks candidate files against a mission document.
type Comparator interface {
	Compare(ctx context.Context, candidates []comparison.InputFile, mission comparison.InputFile) (*types.ComparisonOutcome, error)
}

// Renderer produces document artifacts from a dossier.
type Renderer interface {
	PDF(ctx context.Context, d *types.Dossier) ([]byte, error)
	Deck(ctx context.Context, d *types.Dossier) ([]byte, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	logger         *zap.Logger
	extractor      Extractor
	comparator     Comparator
	renderer       Renderer
	rateLimiter    *ratelimit.Limiter
	maxUploadBytes int64
	llmTimeout     time.Duration
	renderTimeout  time.Duration
}

// Config holds server configuration
type Config struct {
	Port           int
	MaxUploadBytes int64
	LLMTimeout     time.Duration
	RenderTimeout  time.Duration
	Logger         *zap.Logger
	Extractor      Extractor
	Comparator     Comparator
	Renderer       Renderer
	RateLimit      *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Extractor == nil || cfg.Comparator == nil || cfg.Renderer == nil {
		return nil, fmt.Errorf("server requires an extractor, a comparator and a renderer")
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		logger:         log,
		extractor:      cfg.Extractor,
		comparator:     cfg.Comparator,
		renderer:       cfg.Renderer,
		maxUploadBytes: cfg.MaxUploadBytes,
		llmTimeout:     cfg.LLMTimeout,
		renderTimeout:  cfg.RenderTimeout,
	}

	rateCfg := cfg.RateLimit
	if rateCfg == nil {
		rateCfg = ratelimit.LoadConfig()
	}
	s.rateLimiter = ratelimit.NewLimiter(rateCfg)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // LLM calls and browser prints are slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wired route handler, including middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/extract", s.handleExtract)
	mux.HandleFunc("POST /api/v1/extract-text", s.handleExtractText)
	mux.HandleFunc("POST /api/v1/compare", s.handleCompare)
	mux.HandleFunc("POST /api/v1/generate-pdf", s.handleGeneratePDF)
	mux.HandleFunc("POST /api/v1/generate-deck", s.handleGenerateDeck)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse maps a domain error to its status code and stable kind.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status, kind := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("kind", kind), zap.Error(err))
	} else {
		s.logger.Info("request rejected", zap.String("kind", kind), zap.Error(err))
	}
	s.jsonResponse(w, status, errorBody{Error: kind, Detail: err.Error()})
}

// badRequest writes a 400 for a malformed request body or missing part.
func (s *Server) badRequest(w http.ResponseWriter, detail string) {
	s.jsonResponse(w, http.StatusBadRequest, errorBody{Error: "invalid_request", Detail: detail})
}

// extractClientID extracts the client identifier from the request.
// RemoteAddr is used directly; X-Forwarded-For is only safe behind a
// trusted proxy, which this service does not assume.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"detail":    "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
