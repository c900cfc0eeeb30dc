package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/domain"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/filter"
	logpkg "github.com/kailas-cloud/dinemenu/internal/logger"
	healthuc "github.com/kailas-cloud/dinemenu/internal/usecase/health"
	menuuc "github.com/kailas-cloud/dinemenu/internal/usecase/menu"
	reportuc "github.com/kailas-cloud/dinemenu/internal/usecase/report"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the dinemenu HTTP API.
type Server struct {
	menu          *menuuc.Service
	reports       *reportuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	menu *menuuc.Service,
	reports *reportuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		menu:    menu,
		reports: reports,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, ErrorCodeItemNotFound),
		sentinelHandler(domain.ErrSummaryNotFound, http.StatusNotFound, ErrorCodeSummaryNotFound),
		sentinelHandler(domain.ErrUnknownSummary, http.StatusBadRequest, ErrorCodeUnknownSummary),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorCodeBadRequest),
		sourceUnavailableHandler,
	}
	return s
}

// Routes registers the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/items", s.BrowseItems)
			r.Get("/items/{id}", s.GetItem)
			r.Get("/categories", s.ListCategories)
			r.Post("/refresh", s.Refresh)
		})
		r.Get("/summaries", s.ListSummaries)
		r.Get("/summaries/{kind}", s.GetSummary)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// BrowseItems handles GET /api/v1/menu/items?category=&q=.
// A missing category selects all items.
func (s *Server) BrowseItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := s.menu.Browse(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetItem handles GET /api/v1/menu/items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "item id must be an integer")
		return
	}

	entry, err := s.menu.Item(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// ListCategories handles GET /api/v1/menu/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.menu.Categories(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: cats})
}

// Refresh handles POST /api/v1/menu/refresh.
func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	items, err := s.menu.Refresh(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RefreshResponse{
		Total:      len(items),
		Categories: filter.Categories(items),
	})
}

// ListSummaries handles GET /api/v1/summaries.
func (s *Server) ListSummaries(w http.ResponseWriter, _ *http.Request) {
	kinds := s.reports.Kinds()
	resp := SummaryKindsResponse{Kinds: make([]SummaryKind, len(kinds))}
	for i, k := range kinds {
		resp.Kinds[i] = SummaryKind{Kind: string(k), Title: k.Title()}
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSummary handles GET /api/v1/summaries/{kind}.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.reports.Get(r.Context(), chi.URLParam(r, "kind"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
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

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrItemNotFound,
		domain.ErrSummaryNotFound,
		domain.ErrUnknownSummary,
		domain.ErrInvalidRequest,
		domain.ErrSourceUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// sourceUnavailableHandler maps upstream failures to 502 and exposes the
// upstream status code when one was received.
func sourceUnavailableHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		return false
	}
	var se *domain.SourceError
	if errors.As(err, &se) && se.StatusCode > 0 {
		w.Header().Set("X-Upstream-Status", strconv.Itoa(se.StatusCode))
		msg = fmt.Sprintf("%s (upstream status %d)", msg, se.StatusCode)
	}
	writeError(w, http.StatusBadGateway, ErrorCodeSourceUnavailable, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
