package chi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/domain"
	"github.com/kailas-cloud/pokedex/internal/logger"
	healthuc "github.com/kailas-cloud/pokedex/internal/usecase/health"
)

// Catalog serves proxied catalog pages.
type Catalog interface {
	Page(ctx context.Context, number, limit int) ([]domain.Pokemon, error)
}

// Health reports component health.
type Health interface {
	Check(ctx context.Context) healthuc.Report
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ListPokemonsParams are the query parameters of GET /api/pokemons.
type ListPokemonsParams struct {
	Page  *int
	Limit *int
}

// Server implements the pokedex HTTP API.
type Server struct {
	catalog       Catalog
	health        Health
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(catalog Catalog, health Health, logger *zap.Logger) *Server {
	return &Server{
		catalog:       catalog,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Routes registers the API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/pokemons", s.ListPokemons)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListPokemons handles GET /api/pokemons?page=&limit=.
// The body is a bare JSON array; no pagination metadata is returned.
func (s *Server) ListPokemons(w http.ResponseWriter, r *http.Request) {
	params, err := bindListPokemonsParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
		return
	}

	number := 1
	if params.Page != nil {
		number = *params.Page
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
		if limit < 1 {
			writeError(w, http.StatusBadRequest, ErrorCodeInvalidLimit, domain.ErrInvalidLimit.Error())
			return
		}
	}

	items, err := s.catalog.Page(r.Context(), number, limit)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func bindListPokemonsParams(r *http.Request) (ListPokemonsParams, error) {
	var params ListPokemonsParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		return params, errors.New("invalid format for parameter page: " + err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return params, errors.New("invalid format for parameter limit: " + err.Error())
	}
	return params, nil
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

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logger.FromContext(ctx)
	if errors.Is(err, context.Canceled) {
		log.Debug("client went away", zap.Error(err))
		return
	}
	log.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
