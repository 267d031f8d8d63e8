package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/config"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
)

// Server wraps http.Server with graceful shutdown on context cancellation.
type Server struct {
	cfg     config.Config
	handler http.Handler
}

func New(cfg config.Config, handler http.Handler) *Server {
	return &Server{cfg: cfg, handler: handler}
}

func (s *Server) Run(ctx context.Context) error {
	log := logging.NewLogger(ctx)

	httpServer := &http.Server{
		Addr:    net.JoinHostPort("", s.cfg.HTTPPort),
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("graceful shutdown failed: %v", err)
		}
	}()

	log.Infof("server_listening port=%s bucket=%q", s.cfg.HTTPPort, s.cfg.StorageBucket)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
