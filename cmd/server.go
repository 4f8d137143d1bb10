package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ride-api/internal/usecase"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// APIServer serves handler on port until SIGINT/SIGTERM, then drains open
// requests before returning.
func APIServer(ctx context.Context, handler http.Handler, port string, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
		return err
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// SessionJanitor purges long-expired sessions every interval until ctx ends.
func SessionJanitor(ctx context.Context, auth usecase.AuthService, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := auth.CleanExpiredSessions(ctx); err != nil {
				log.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}
}
