package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/user/movies-api-go/docs"
	"github.com/user/movies-api-go/internal/config"
	"github.com/user/movies-api-go/internal/store"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Server serves the catalog resources plus health checks and metrics
type Server struct {
	store     store.Store
	cfg       config.ServerConfig
	router    *chi.Mux
	handler   http.Handler
	server    *http.Server
	limiter   *rate.Limiter
	startTime time.Time
}

// NewServer creates a new HTTP server instance backed by st
func NewServer(st store.Store, cfg config.ServerConfig) *Server {
	s := &Server{
		store:     st,
		cfg:       cfg,
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	s.setupRoutes()
	s.handler = otelhttp.NewHandler(s.router, "movies-api")
	return s
}

// setupRoutes configures the middleware stack and the HTTP routes
func (s *Server) setupRoutes() {
	r := s.router

	r.Use(hlog.NewHandler(log.Logger))
	r.Use(requestID)
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(instrument)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.rateLimit)
	if s.cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	resource(r, "/movies", resourceHandlers{
		list:    s.listMovies,
		create:  s.createMovie,
		get:     s.getMovie,
		replace: s.replaceMovie,
		patch:   s.patchMovie,
		remove:  s.deleteMovie,
	})
	resource(r, "/directors", resourceHandlers{
		list:    s.listDirectors,
		create:  s.createDirector,
		get:     s.getDirector,
		replace: s.replaceDirector,
		patch:   s.patchDirector,
		remove:  s.deleteDirector,
	})
	resource(r, "/genres", resourceHandlers{
		list:    s.listGenres,
		create:  s.createGenre,
		get:     s.getGenre,
		replace: s.replaceGenre,
		patch:   s.patchGenre,
		remove:  s.deleteGenre,
	})
}

type resourceHandlers struct {
	list, create, get, replace, patch, remove http.HandlerFunc
}

// resource registers the collection routes with and without a trailing slash
func resource(r chi.Router, path string, h resourceHandlers) {
	for _, p := range []string{path, path + "/"} {
		r.Get(p, h.list)
		r.Post(p, h.create)
	}
	item := path + "/{id}"
	r.Get(item, h.get)
	r.Put(item, h.replace)
	r.Patch(item, h.patch)
	r.Delete(item, h.remove)
}

// Handler returns the fully wrapped handler, including tracing
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening on the specified port
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Int("port", port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	log.Info().Msg("Stopping HTTP server")
	return s.server.Shutdown(ctx)
}

// handleHealth returns JSON with status, database connectivity, and uptime
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check database connectivity
	dbStatus := "healthy"
	if err := s.store.Ping(ctx); err != nil {
		dbStatus = fmt.Sprintf("unhealthy: %v", err)
	}

	uptime := time.Since(s.startTime).Round(time.Second).String()

	status := "healthy"
	if dbStatus != "healthy" {
		status = "unhealthy"
	}

	response := HealthResponse{
		Status:   status,
		Database: dbStatus,
		Uptime:   uptime,
	}

	w.Header().Set("Content-Type", "application/json")
	if status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to encode health response")
	}
}

// GetUptime returns the server uptime
func (s *Server) GetUptime() time.Duration {
	return time.Since(s.startTime)
}
