// Package app wires the mirror middleware components and manages their lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/casamatriz/mirror-middleware/internal/config"
)

// MirrorApp encapsulates all components needed to run the middleware
type MirrorApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// Start starts the background sync (when configured) and the HTTP server.
// It blocks until the HTTP server stops or fails.
func (app *MirrorApp) Start() error {
	if app.components.SyncCoordinator != nil {
		go func() {
			if err := app.components.SyncCoordinator.Start(app.ctx); err != nil {
				slog.Error("Sync coordinator failed", "error", err)
			}
		}()
	}

	slog.Info("Server listening", "address", app.httpServer.Addr)
	if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Stop stops the sync coordinator, then shuts the HTTP server down within timeout
func (app *MirrorApp) Stop(timeout time.Duration) error {
	slog.Info("Shutting down server...")

	if app.components.SyncCoordinator != nil {
		if err := app.components.SyncCoordinator.Stop(); err != nil {
			slog.Error("Failed to stop sync coordinator", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := app.httpServer.Shutdown(shutdownCtx)

	// pools are closed only after in-flight requests drained
	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}

// GetConfig returns the application configuration
func (app *MirrorApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server
func (app *MirrorApp) GetHTTPServer() *http.Server {
	return app.httpServer
}

// Components returns the wired components
func (app *MirrorApp) Components() *AppComponents {
	return app.components
}
