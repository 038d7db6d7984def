// Package server exposes the local catalog over HTTP in the shape the browser's
// HTTP source consumes.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jask/coursedeck/internal/source"
)

// Server holds the state for the HTTP server.
type Server struct {
	router *gin.Engine
	logger zerolog.Logger
	http   *http.Server
}

// New builds a server listening on addr and serving src.
func New(addr string, src source.Source, lgr zerolog.Logger) *Server {
	router := NewRouter(src, lgr)
	return &Server{
		router: router,
		logger: lgr,
		http: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
	}
	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
		return err
	}
	s.logger.Info().Msg("HTTP server gracefully stopped")
	return nil
}
