// Package chi exposes the search use cases over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/oku-lab/wikisearch/internal/domain"
	healthuc "github.com/oku-lab/wikisearch/internal/usecase/health"
	searchuc "github.com/oku-lab/wikisearch/internal/usecase/search"
)

type errorCode string

const (
	codeInvalidQuery      errorCode = "invalid_query"
	codeSearchUnavailable errorCode = "search_unavailable"
	codeSearchFailed      errorCode = "search_failed"
	codeUnauthorized      errorCode = "unauthorized"
	codeInternalError     errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type pageSearchResponse struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
}

type rankedEntry struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Count int     `json:"count"`
	Score float64 `json:"score"`
}

type rankedSearchResponse struct {
	Query   string        `json:"query"`
	Total   int           `json:"total"`
	Results []rankedEntry `json:"results"`
}

type highlightHit struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URLTitle string `json:"url_title"`
	Modified string `json:"modified"`
	Snippet  string `json:"snippet"`
}

type highlightSearchResponse struct {
	Total int            `json:"total"`
	Hits  []highlightHit `json:"hits"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the search and health services over HTTP.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search: search,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeInvalidQuery),
		sentinelHandler(domain.ErrSearchUnavailable, http.StatusServiceUnavailable, codeSearchUnavailable),
		sentinelHandler(domain.ErrSearchFailed, http.StatusInternalServerError, codeSearchFailed),
	}
	return s
}

// Routes mounts all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.Root)
	r.Get("/search", s.SearchPages)
	r.Get("/search/files", s.SearchRanked)
	r.Get("/search/highlight", s.SearchHighlight)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "wikisearch API. Query /search, /search/files or /search/highlight with ?q=<keyword>.",
	})
}

// SearchPages handles GET /search: the page-title list response.
func (s *Server) SearchPages(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	titles, err := s.search.SearchPages(r.Context(), keyword)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageSearchResponse{
		Query:   keyword,
		Results: titles,
	})
}

// SearchRanked handles GET /search/files: the ranked file-list response.
func (s *Server) SearchRanked(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	entries, err := s.search.SearchRanked(r.Context(), keyword)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]rankedEntry, len(entries))
	for i := range entries {
		results[i] = rankedEntry{
			ID:    entries[i].ID(),
			Title: entries[i].Title(),
			Count: entries[i].Count(),
			Score: entries[i].Score(),
		}
	}

	writeJSON(w, http.StatusOK, rankedSearchResponse{
		Query:   keyword,
		Total:   len(results),
		Results: results,
	})
}

// SearchHighlight handles GET /search/highlight: highlighted snippets.
func (s *Server) SearchHighlight(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")

	snippets, total, err := s.search.SearchHighlight(r.Context(), keyword)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits := make([]highlightHit, len(snippets))
	for i := range snippets {
		hits[i] = highlightHit{
			ID:       snippets[i].ID(),
			Title:    snippets[i].Title(),
			URLTitle: snippets[i].URLTitle(),
			Modified: snippets[i].Modified(),
			Snippet:  snippets[i].Text(),
		}
	}

	writeJSON(w, http.StatusOK, highlightSearchResponse{
		Total: total,
		Hits:  hits,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error. The wrapped error text is attached as the client message.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("search error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
