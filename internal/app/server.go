package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/almanac/internal/server"
)

// startServer binds the HTTP port and serves health, metrics and queries in
// the background.
func (a *App) startServer(ctx context.Context, q server.Querier) error {
	a.logger.Debug("Configuring HTTP server.")
	addr := fmt.Sprintf(":%d", a.config.HealthcheckPort)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	handler := server.New(q, a.logger, a.metrics)
	a.httpServer = server.NewHTTPServer(addr, handler.Router())
	a.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		a.logger.Info("🩺 HTTP server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		// Serve returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server failed unexpectedly", "error", err)
		}
	}()
	return nil
}

func (a *App) closeServer() {
	if a.httpServer == nil {
		return
	}

	// The run context may already be cancelled, so shutdown gets its own.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("🩺 Shutting down HTTP server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP server shutdown failed", "error", err)
		return
	}
	a.logger.Debug("HTTP server shut down gracefully.")
}
