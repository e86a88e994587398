package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// Server tuning knobs.
const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second

	// A day push can spend two vendor calls plus a token refresh before it
	// answers, so the write timeout must cover the slowest legal request.
	writeTimeout = 2 * time.Minute
)

// Server wraps an *http.Server to provide a run/shutdown lifecycle around
// the bridge routes.
type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

// NewServer builds the bridge server from the settings' api section.
func NewServer(settings domain.APISettings, services Services, log *logger.Logger) *Server {
	handler := NewHandler(services, settings.Token, log)
	return &Server{
		httpServer: &http.Server{
			Addr:              settings.Addr,
			Handler:           handler.InitRoutes(),
			MaxHeaderBytes:    maxHeaderBytes,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		log: log,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until the context is cancelled, then drains in-flight
// requests. A nil return means a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		if s.log != nil {
			s.log.Warnf("Bridge shutdown did not drain cleanly: %v", err)
		}
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
