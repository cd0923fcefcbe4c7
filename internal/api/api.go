// Package api provides the HTTP surface of the holiday engine: province
// reference data, holiday resolution with search/filter, CSV/ICS export,
// the resolution journal, and the WebSocket refresh feed.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/yzho285/public-holidays-display/internal/gateway"
	"github.com/yzho285/public-holidays-display/internal/journal"
	"github.com/yzho285/public-holidays-display/internal/metrics"
	"github.com/yzho285/public-holidays-display/internal/resolver"
)

// Server bundles the engine components behind HTTP handlers.
type Server struct {
	resolver *resolver.Service
	journal  *journal.Journal // optional
	hub      *gateway.Hub     // optional
	metrics  *metrics.Metrics // optional
	logger   *slog.Logger
	validate *validator.Validate
}

// Config assembles a Server. Resolver and Logger are required; Journal, Hub,
// and Metrics may be nil and their endpoints degrade accordingly.
type Config struct {
	Resolver *resolver.Service
	Journal  *journal.Journal
	Hub      *gateway.Hub
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// New creates the API server.
func New(cfg Config) *Server {
	return &Server{
		resolver: cfg.Resolver,
		journal:  cfg.Journal,
		hub:      cfg.Hub,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
		validate: validator.New(),
	}
}

// Router builds the HTTP handler: versioned routes, CORS for browser
// consumers, request IDs, and per-route request metrics.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	v1.HandleFunc("/provinces", s.handleProvinces).Methods(http.MethodGet)
	v1.HandleFunc("/holidays", s.handleHolidays).Methods(http.MethodGet)
	v1.HandleFunc("/holidays/export", s.handleExport).Methods(http.MethodGet)
	v1.HandleFunc("/resolutions", s.handleResolutions).Methods(http.MethodGet)

	if s.hub != nil {
		r.HandleFunc("/ws", s.hub.HandleWS)
	}

	handler := s.withRequestID(s.withMetrics(r))
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(handler)
}
