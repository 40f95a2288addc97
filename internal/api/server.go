// ABOUTME: HTTP server for the dream journal API
// ABOUTME: Router construction, dependency wiring, and graceful shutdown
package api

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/harper/dreamdecoder/internal/insights"
	"github.com/harper/dreamdecoder/internal/journal"
	"github.com/harper/dreamdecoder/internal/symbols"
)

const shutdownTimeout = 5 * time.Second

// Deps are the services the API exposes.
type Deps struct {
	Journal  *journal.Store
	Guide    *symbols.Guide
	Insights *insights.Service
	Logger   zerolog.Logger
	// Registry receives the API metrics; nil uses a fresh registry.
	Registry *prometheus.Registry
}

// Server serves the JSON API.
type Server struct {
	journal  *journal.Store
	guide    *symbols.Guide
	insights *insights.Service
	validate *validator.Validate
	registry *prometheus.Registry
	metrics  *Metrics
	log      zerolog.Logger
}

// New creates a server over deps.
func New(deps Deps) *Server {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &Server{
		journal:  deps.Journal,
		guide:    deps.Guide,
		insights: deps.Insights,
		validate: newValidator(),
		registry: reg,
		metrics:  NewMetrics(reg),
		log:      deps.Logger,
	}
}

// newValidator reports field errors by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(instrumentMiddleware(s.log, s.metrics), recoveryMiddleware(s.log))

	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)

	api.HandleFunc("/dreams", s.handleAddDream).Methods(http.MethodPost)
	api.HandleFunc("/dreams", s.handleListDreams).Methods(http.MethodGet)
	api.HandleFunc("/dreams/{id}", s.handleGetDream).Methods(http.MethodGet)
	api.HandleFunc("/dreams/{id}", s.handleUpdateDream).Methods(http.MethodPut)
	api.HandleFunc("/dreams/{id}", s.handleDeleteDream).Methods(http.MethodDelete)
	api.HandleFunc("/dreams/{id}/dna", s.handleDNA).Methods(http.MethodGet)
	api.HandleFunc("/dreams/{id}/dreamify", s.handleDreamify).Methods(http.MethodPost)
	api.HandleFunc("/dreams/{id}/recommendations", s.handleRecommendations).Methods(http.MethodGet)

	api.HandleFunc("/symbols/{name}", s.handleSymbol).Methods(http.MethodGet)
	api.HandleFunc("/reflections", s.handleReflections).Methods(http.MethodGet)
	api.HandleFunc("/timeline", s.handleTimeline).Methods(http.MethodGet)
	api.HandleFunc("/export", s.handleExport).Methods(http.MethodGet)

	return router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
