package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server and blocks until an interrupt or SIGTERM,
// then shuts down gracefully.
func (s *Server) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.StartSubscribers(ctx); err != nil {
		s.E.Logger.Fatalf("starting subscribers: %v", err)
	}

	go func() {
		if err := s.E.Start(s.Cfg.Addr); err != nil && err != http.ErrServerClosed {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	cancel()
	_ = s.Bus.Close()
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		s.E.Logger.Fatal(err)
	}
}
