package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

// Server binds the HTTP API to its listener and owns the database handle for
// the life of the process.
type Server struct {
	srv *http.Server
	db  io.Closer

	shutdownOnce sync.Once
	shutdownErr  error
}

func New(addr string, handler http.Handler, db io.Closer) *Server {
	return &Server{
		srv: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		db: db,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done or the server fails, then
// runs Shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log.Info().Msgf("Server is running on http://localhost%s", portSuffix(ln.Addr()))

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
	case serveErr = <-errCh:
		if serveErr != nil {
			log.Error().Err(serveErr).Msg("server stopped unexpectedly")
		}
	}

	if err := s.Shutdown(); err != nil && serveErr == nil {
		return err
	}
	return serveErr
}

// Shutdown releases the database connection and closes the listener without
// waiting for in-flight requests. Only the first call has any effect.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		if err := s.db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing the database connection")
			s.shutdownErr = fmt.Errorf("failed to close database: %w", err)
		} else {
			log.Info().Msg("Database connection closed")
		}

		if err := s.srv.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing the listener")
		}
	})
	return s.shutdownErr
}

func portSuffix(addr net.Addr) string {
	if tcp, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprintf(":%d", tcp.Port)
	}
	return addr.String()
}
