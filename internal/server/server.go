// Package server wires the HTTP surface: router, middleware chain and the
// API routes.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fullstackvibes/folio/internal/server/handlers"
	servermw "github.com/fullstackvibes/folio/internal/server/middleware"
)

// Options carries the server's dependencies. Handlers are constructed by
// the caller so tests can assemble a server around fakes.
type Options struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	Logger   *zap.Logger
	Contact  *handlers.ContactHandler
	Chat     *handlers.ChatHandler
	Projects *handlers.ProjectsHandler
}

// Server represents the HTTP server.
type Server struct {
	router *chi.Mux
	server *http.Server
	logger *zap.Logger
	opts   Options
}

// New creates a new HTTP server instance.
func New(opts Options) *Server {
	r := chi.NewRouter()

	// Middleware in order: RequestID → Logging → Recovery.
	r.Use(servermw.RequestID)
	r.Use(servermw.RequestLogger(opts.Logger))
	r.Use(servermw.Recovery(opts.Logger))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeErrorEnvelope(w, http.StatusNotFound, "The requested resource was not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeErrorEnvelope(w, http.StatusMethodNotAllowed, "The requested method is not allowed for this resource")
	})

	s := &Server{
		router: r,
		logger: opts.Logger,
		opts:   opts,
	}

	s.registerRoutes()

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  orDefault(s.opts.ReadTimeout, 30*time.Second),
		WriteTimeout: orDefault(s.opts.WriteTimeout, 30*time.Second),
		IdleTimeout:  orDefault(s.opts.IdleTimeout, 120*time.Second),
	}

	if s.logger != nil {
		s.logger.Info("Starting HTTP server",
			zap.String("host", s.opts.Host),
			zap.Int("port", s.opts.Port),
			zap.String("addr", addr))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("Shutting down HTTP server")
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying router for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
