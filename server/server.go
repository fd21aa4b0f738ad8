package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/poiesic/opsassist/ai"
	"github.com/poiesic/opsassist/corpus"
	"github.com/poiesic/opsassist/ireno"
	"github.com/poiesic/opsassist/search"
)

const (
	defaultAddr            = ":8080"
	defaultRequestTimeout  = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server serves the assistant API: chat, SOP search, and fleet dashboards.
type Server struct {
	addr      string
	responder ai.Responder
	loader    *corpus.Loader
	engine    *search.Engine
	client    *ireno.Client
	origins   []string
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithEngine overrides the search engine used by the SOP search endpoint.
func WithEngine(engine *search.Engine) Option {
	return func(s *Server) {
		s.engine = engine
	}
}

// WithAllowedOrigins sets the CORS allow list. Defaults to all origins.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates the API server. The responder answers chat questions,
// the loader assembles the SOP corpus for search, and the client reports
// collector fleet status. A nil loader disables SOP search (the endpoint
// answers 503).
func NewServer(responder ai.Responder, loader *corpus.Loader, client *ireno.Client, opts ...Option) *Server {
	s := &Server{
		addr:      defaultAddr,
		responder: responder,
		loader:    loader,
		engine:    search.NewEngine(),
		client:    client,
		origins:   []string{"*"},
		logger:    slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the chi handler with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsMiddleware(s.origins))
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Timeout(defaultRequestTimeout))

	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/sop-search", s.handleSOPSearch)
		r.Get("/charts", s.handleCharts)
		r.Get("/system-status", s.handleSystemStatus)
	})

	return r
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", "err", err)
		return srv.Close()
	}

	s.logger.Info("server stopped")
	return nil
}

// snapshot returns live fleet data when the API answers, mock data
// otherwise. The bool reports whether the data is live.
func (s *Server) snapshot(ctx context.Context) (*ireno.StatusSnapshot, bool) {
	if s.client != nil {
		if snap, err := s.client.Snapshot(ctx); err == nil {
			return snap, true
		} else {
			s.logger.Warn("live snapshot unavailable, using mock data", "err", err)
		}
	}
	return ireno.MockSnapshot(), false
}
