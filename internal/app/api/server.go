// Package api exposes the live layout over HTTP for external renderers.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockyard/internal/logging"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves the layout API.
type Server struct {
	addr     string
	handlers *Handlers
}

// NewServer creates a server listening on addr.
func NewServer(addr string, deps Deps) *Server {
	return &Server{addr: addr, handlers: NewHandlers(deps)}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		requestLogger(logging.FromContext(logging.WithComponent(ctx, "api"))),
		middleware.Recoverer,
	)
	SetupRoutes(r, s.handlers)
	return r
}

// Serve runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	log := logging.FromContext(ctx)
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(ctx),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: readHeaderTimeout,
	}

	eg.Go(func() error {
		log.Info().Str("addr", s.addr).Msg("layout API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Debug().Msg("shutting down layout API")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
