package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/iwvelando/amortize/pkg/constants"
	"go.uber.org/zap"
)

// Run serves handler on listener until ctx is cancelled, then shuts down
// gracefully, giving in-flight requests shutdownTimeout to finish.
func Run(ctx context.Context, logger *zap.Logger, listener net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = constants.DefaultShutdownTimeout
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening",
			zap.String("op", "server.Run"),
			zap.String("address", listener.Addr().String()),
		)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down HTTP server", zap.String("op", "server.Run"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// ListenAndRun listens on address and calls Run.
func ListenAndRun(ctx context.Context, logger *zap.Logger, address string, handler http.Handler, shutdownTimeout time.Duration) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return Run(ctx, logger, listener, handler, shutdownTimeout)
}
