package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-item-reviews/internal/config"
	"github.com/MKhiriev/go-item-reviews/internal/handler"
	"github.com/MKhiriev/go-item-reviews/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server around the router of handlers.HTTP.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.shutdown(ctx)
}

// run serves until ctx is done, then shuts the servers down and waits for
// in-flight requests to finish.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	stopped := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		stopped <- s.httpServer.listen()
	}()

	select {
	case <-ctx.Done():
	case err := <-stopped:
		if err != nil {
			return fmt.Errorf("%w: %w", errHTTPServerStopped, err)
		}
		return errHTTPServerStopped
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := s.Shutdown(shutdownCtx)
	if err := <-stopped; err != nil {
		s.logger.Error().Err(err).Msg("HTTP server failed during shutdown")
	}
	if shutdownErr != nil {
		return shutdownErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
