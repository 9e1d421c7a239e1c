package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/casamatriz/mirror-middleware/internal/app"
	"github.com/casamatriz/mirror-middleware/internal/db"
	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mirror middleware",
	Long: `Start the HTTP API. Configuration is read from the optional --config file and
from the environment (DB_USER, DB_PASS, DB_NAME, DB_HOST_READ and MIRROR_* keys).`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second
	defaultReadPoolWait    = 30 * time.Second
)

func init() {
	serveCmd.Flags().String("address", ":4000", "Address to listen on")
	serveCmd.Flags().Duration("wait-for-db", defaultReadPoolWait,
		"How long to wait for the read replica before serving anyway (0 disables the wait)")

	if err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address")); err != nil {
		slog.Error("Failed to bind address flag", "error", err)
	}
	if err := viper.BindPFlag("wait-for-db", serveCmd.Flags().Lookup("wait-for-db")); err != nil {
		slog.Error("Failed to bind wait-for-db flag", "error", err)
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slog.Info("Configuration loaded",
		"candidates", cfg.Cluster.Candidates,
		"read_host", cfg.Database.ReadHost,
		"inventory", cfg.Inventory.Endpoint)

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown telemetry", "error", err)
		}
	}()

	readPool, err := db.NewReadPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer readPool.Close()

	// an unreachable replica degrades /api/local/* but never blocks startup
	if wait := viper.GetDuration("wait-for-db"); wait > 0 {
		if err := db.WaitForPool(ctx, "read", readPool, wait); err != nil {
			slog.Warn("Serving without a reachable read replica", "error", err)
		}
	}

	opts := []app.MirrorAppOptions{
		app.WithConfig(cfg),
		app.WithAddress(viper.GetString("address")),
		app.WithReadPool(readPool),
		app.WithMeterProvider(tel.MeterProvider()),
		app.WithTracerProvider(tel.TracerProvider()),
	}
	if h := tel.MetricsHandler(); h != nil {
		opts = append(opts, app.WithMetricsHandler(h))
	}

	mirrorApp, err := app.NewMirrorApp(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- mirrorApp.Start()
	}()

	select {
	case err := <-errCh:
		if stopErr := mirrorApp.Stop(defaultGracefulTimeout); stopErr != nil {
			slog.Error("Failed to stop application", "error", stopErr)
		}
		return err
	case <-ctx.Done():
	}

	return mirrorApp.Stop(defaultGracefulTimeout)
}
