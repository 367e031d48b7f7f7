// Package httpapi exposes the sequence repository over a JSON HTTP
// surface mirroring the ProteinLab API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"proteinlab/internal/core"
	"proteinlab/pkg/domain"
)

// Server adapts the core service to HTTP. Serialization and status
// mapping live here; the core owns all domain semantics.
type Server struct {
	svc     *core.Service
	logger  core.Logger
	metrics http.Handler
	origins []string
}

// Option customizes server construction.
type Option func(*Server)

// WithLogger attaches a request logger.
func WithLogger(l core.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetricsHandler mounts a handler (e.g. promhttp) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithAllowedOrigins enables CORS for the listed origins. "*" allows
// any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

// NewServer constructs an HTTP server over the service.
func NewServer(svc *core.Service, opts ...Option) *Server {
	s := &Server{svc: svc, logger: noopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Handler returns the routed handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /amino-acids", s.handleAminoAcids)
	mux.HandleFunc("POST /sequences/text", s.handleCreateText)
	mux.HandleFunc("POST /sequences/upload", s.handleUpload)
	mux.HandleFunc("GET /sequences", s.handleList)
	mux.HandleFunc("GET /sequences/{id}", s.handleGet)
	mux.HandleFunc("GET /sequences/{id}/profile", s.handleProfile)
	mux.HandleFunc("POST /sequences/{id}/mutate", s.handleMutate)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
	return s.cors(mux)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ProteinLab API - ready"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAminoAcids(w http.ResponseWriter, _ *http.Request) {
	catalog := s.svc.Catalog()
	names := make(map[string]string, len(catalog))
	for _, aa := range catalog {
		names[aa.Code] = aa.Name
	}
	writeJSON(w, http.StatusOK, names)
}

type createRequest struct {
	Name     string `json:"name"`
	Sequence string `json:"sequence"`
}

func (s *Server) handleCreateText(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	rec, err := s.svc.CreateSequence(r.Context(), req.Name, req.Sequence)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	body := r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "missing file field")
			return
		}
		defer func() { _ = file.Close() }()
		body = file
	}
	rec, err := s.svc.ImportFASTA(r.Context(), body)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.svc.Summaries(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := s.svc.GetRecord(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	prof, err := s.svc.Profile(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

type mutateRequest struct {
	Position   int    `json:"position"`
	NewResidue string `json:"new_residue"`
}

func (s *Server) handleMutate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req mutateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	result, err := s.svc.Mutate(r.Context(), id, req.Position, req.NewResidue)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid record id")
		return 0, false
	}
	return id, true
}

// writeDomainError maps the core error taxonomy onto HTTP statuses.
// Every validation failure is a 400 with a machine-readable code; only
// an unknown record id is a 404.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	var (
		notFound   domain.NotFoundError
		invalidIn  domain.InvalidInputError
		invalidSeq domain.InvalidSequenceError
		invalidPos domain.InvalidPositionError
		invalidRes domain.InvalidResidueError
		noop       domain.NoOpMutationError
	)
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.As(err, &invalidIn):
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.As(err, &invalidSeq):
		writeError(w, http.StatusBadRequest, "invalid_sequence", err.Error())
	case errors.As(err, &invalidPos):
		writeError(w, http.StatusBadRequest, "invalid_position", err.Error())
	case errors.As(err, &invalidRes):
		writeError(w, http.StatusBadRequest, "invalid_residue", err.Error())
	case errors.As(err, &noop):
		writeError(w, http.StatusBadRequest, "noop_mutation", err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Code: code, Error: msg})
}

// cors applies the configured allow-list. The browser UI is served
// from a different origin, so preflight requests must succeed.
func (s *Server) cors(next http.Handler) http.Handler {
	if len(s.origins) == 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.origins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}
