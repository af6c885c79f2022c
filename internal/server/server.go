// Package server exposes the remediation engine over HTTP.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/s4lift/s4lift/pkg/catalog"
	"github.com/s4lift/s4lift/pkg/remediate"
)

// Server is the remediation API server.
type Server struct {
	engine  *remediate.Engine
	catalog *catalog.Catalog
	addr    string
	logger  *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Addr    string
	Engine  *remediate.Engine
	Catalog *catalog.Catalog
	Logger  *slog.Logger
}

// New creates a new API server instance.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		engine:  cfg.Engine,
		catalog: cfg.Catalog,
		addr:    cfg.Addr,
		logger:  logger,
	}
}

// Handler returns the HTTP handler with all routes and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Post("/remediate-mm-im", s.handleRemediate)
	r.Get("/tables", s.handleTables)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting remediation API", "addr", s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down remediation API...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
