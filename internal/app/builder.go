package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/api"
	"github.com/casamatriz/mirror-middleware/internal/cluster"
	"github.com/casamatriz/mirror-middleware/internal/config"
	"github.com/casamatriz/mirror-middleware/internal/db"
	"github.com/casamatriz/mirror-middleware/internal/health"
	"github.com/casamatriz/mirror-middleware/internal/httpclient"
	"github.com/casamatriz/mirror-middleware/internal/router"
	"github.com/casamatriz/mirror-middleware/internal/service"
	database "github.com/casamatriz/mirror-middleware/internal/service/db"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	"github.com/casamatriz/mirror-middleware/internal/status"
	pkgsync "github.com/casamatriz/mirror-middleware/internal/sync"
	"github.com/casamatriz/mirror-middleware/internal/sync/coordinator"
	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

const (
	defaultHTTPAddress    = ":4000"
	defaultRequestTimeout = 30 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 35 * time.Second
	defaultIdleTimeout    = 60 * time.Second

	// TracerName is the instrumentation scope of every span the middleware emits
	TracerName = "github.com/casamatriz/mirror-middleware"
)

// MirrorAppOptions is a function that configures the app builder
type MirrorAppOptions func(*mirrorAppConfig) error

// mirrorAppConfig collects the builder inputs. Every component can be injected,
// anything left nil is built from config.
type mirrorAppConfig struct {
	config *config.Config

	readPool      *pgxpool.Pool
	secondaryPool *pgxpool.Pool
	httpClient    httpclient.Client
	discoverer    cluster.Discoverer
	writeAccess   router.WriteAccessor
	engine        pkgsync.Engine
	mirrorService service.MirrorService

	// HTTP server options
	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	// Telemetry components
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler

	// pools opened by the builder, closed when the app stops
	owned []*pgxpool.Pool
}

func baseConfig(opts ...MirrorAppOptions) (*mirrorAppConfig, error) {
	cfg := &mirrorAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewMirrorApp builds the application from the given options
func NewMirrorApp(ctx context.Context, opts ...MirrorAppOptions) (*MirrorApp, error) {
	b, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}
	if b.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			b.closePools()
		}
	}()

	components, err := buildComponents(ctx, b)
	if err != nil {
		return nil, err
	}

	httpServer, err := buildHTTPServer(ctx, b, components.MirrorService)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)
	cleanupNeeded = false

	return &MirrorApp{
		config:     b.config,
		components: components,
		httpServer: httpServer,
		ctx:        appCtx,
		cancelFunc: func() {
			cancel()
			b.closePools()
		},
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		_, port, err := net.SplitHostPort(addr)
		if err != nil {
			return fmt.Errorf("address is not a valid host:port: %w", err)
		}
		if port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares sets custom HTTP middlewares, replacing the defaults
func WithMiddlewares(mw ...func(http.Handler) http.Handler) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithReadPool injects the read replica pool. The caller keeps ownership.
func WithReadPool(pool *pgxpool.Pool) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.readPool = pool
		return nil
	}
}

// WithSecondaryPool injects the secondary store pool. The caller keeps ownership.
func WithSecondaryPool(pool *pgxpool.Pool) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.secondaryPool = pool
		return nil
	}
}

// WithHTTPClient sets the client used against the inventory service
func WithHTTPClient(c httpclient.Client) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithDiscoverer allows injecting a custom primary discoverer (for testing)
func WithDiscoverer(d cluster.Discoverer) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.discoverer = d
		return nil
	}
}

// WithWriteAccessor allows injecting a custom write router (for testing)
func WithWriteAccessor(w router.WriteAccessor) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.writeAccess = w
		return nil
	}
}

// WithEngine allows injecting a custom sync engine (for testing)
func WithEngine(e pkgsync.Engine) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.engine = e
		return nil
	}
}

// WithMirrorService allows injecting a custom service (for testing)
func WithMirrorService(s service.MirrorService) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.mirrorService = s
		return nil
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider
func WithMeterProvider(mp metric.MeterProvider) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider
func WithTracerProvider(tp trace.TracerProvider) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler exposes h at /metrics
func WithMetricsHandler(h http.Handler) MirrorAppOptions {
	return func(cfg *mirrorAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

func (b *mirrorAppConfig) closePools() {
	for _, p := range b.owned {
		p.Close()
	}
	b.owned = nil
}

func (b *mirrorAppConfig) tracer() trace.Tracer {
	if b.tracerProvider == nil {
		return nil
	}
	return b.tracerProvider.Tracer(TracerName)
}

// buildComponents builds every component not injected through options
func buildComponents(ctx context.Context, b *mirrorAppConfig) (*AppComponents, error) {
	if err := buildPools(ctx, b); err != nil {
		return nil, err
	}

	metrics, err := buildMetrics(b)
	if err != nil {
		return nil, err
	}

	if b.httpClient == nil {
		b.httpClient = httpclient.NewDefaultClient(b.config.Inventory.GetTimeout())
	}

	inventory, err := sources.NewHTTPInventorySource(b.httpClient, b.config.Inventory.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory source: %w", err)
	}
	appointments, err := sources.NewDBAppointmentSource(b.secondaryPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment source: %w", err)
	}

	if err := buildClusterComponents(b, metrics.cluster); err != nil {
		return nil, err
	}

	tracker, err := buildTracker(ctx, b.config)
	if err != nil {
		return nil, err
	}

	syncCoordinator, err := buildSyncComponents(b, inventory, appointments, tracker, metrics.sync)
	if err != nil {
		return nil, fmt.Errorf("failed to build sync components: %w", err)
	}

	aggregator := health.NewAggregator([]health.Checker{
		health.NewDBChecker(health.SubsystemLocal, b.readPool),
		health.NewHTTPChecker(health.SubsystemInventory, b.httpClient, inventory.ListsURL()),
		health.NewDBChecker(health.SubsystemSecondary, b.secondaryPool),
	}, health.WithMetrics(metrics.health))

	if b.mirrorService == nil {
		b.mirrorService, err = database.New(
			database.WithReadPool(b.readPool),
			database.WithDiscoverer(b.discoverer),
			database.WithSources(inventory, appointments),
			database.WithEngine(b.engine),
			database.WithHealth(aggregator),
			database.WithTracker(tracker),
			database.WithTracer(b.tracer()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create mirror service: %w", err)
		}
	}

	return &AppComponents{
		SyncCoordinator: syncCoordinator,
		MirrorService:   b.mirrorService,
		Discoverer:      b.discoverer,
		Tracker:         tracker,
	}, nil
}

func buildPools(ctx context.Context, b *mirrorAppConfig) error {
	if b.readPool == nil {
		pool, err := db.NewReadPool(ctx, b.config)
		if err != nil {
			return fmt.Errorf("failed to create read pool: %w", err)
		}
		b.readPool = pool
		b.owned = append(b.owned, pool)
	}

	if b.secondaryPool == nil {
		pool, err := db.NewSecondaryPool(ctx, &b.config.Secondary)
		if err != nil {
			return fmt.Errorf("failed to create secondary pool: %w", err)
		}
		b.secondaryPool = pool
		b.owned = append(b.owned, pool)
	}
	return nil
}

type appMetrics struct {
	cluster *telemetry.ClusterMetrics
	sync    *telemetry.SyncMetrics
	health  *telemetry.HealthMetrics
}

// buildMetrics returns nil instruments when no meter provider is set; every
// recorder is nil-safe.
func buildMetrics(b *mirrorAppConfig) (appMetrics, error) {
	var m appMetrics
	if b.meterProvider == nil {
		return m, nil
	}

	var err error
	if m.cluster, err = telemetry.NewClusterMetrics(b.meterProvider); err != nil {
		return m, fmt.Errorf("failed to create cluster metrics: %w", err)
	}
	if m.sync, err = telemetry.NewSyncMetrics(b.meterProvider); err != nil {
		return m, fmt.Errorf("failed to create sync metrics: %w", err)
	}
	if m.health, err = telemetry.NewHealthMetrics(b.meterProvider); err != nil {
		return m, fmt.Errorf("failed to create health metrics: %w", err)
	}
	slog.Info("Middleware metrics enabled")
	return m, nil
}

// buildClusterComponents builds the prober and the write router
func buildClusterComponents(b *mirrorAppConfig, metrics *telemetry.ClusterMetrics) error {
	cfg := b.config

	if b.discoverer == nil {
		checker := cluster.NewPgxChecker(cfg.ConnectionStringFor, cfg.Cluster.GetProbeTimeout())
		prober, err := cluster.NewProber(cfg.Cluster.Candidates, checker,
			cluster.WithPort(cfg.Cluster.Port),
			cluster.WithMetrics(metrics),
			cluster.WithTracer(b.tracer()),
		)
		if err != nil {
			return fmt.Errorf("failed to create prober: %w", err)
		}
		b.discoverer = prober
		slog.Info("Prober configured",
			"candidates", cfg.Cluster.Candidates,
			"probe_timeout", cfg.Cluster.GetProbeTimeout())
	}

	if b.writeAccess == nil {
		r, err := router.NewRouter(
			router.NewPgxPoolOpener(cfg.ConnectionStringFor, cfg.Cluster.GetWritePoolSize()),
			router.WithAtomic(cfg.Sync.Atomic),
			router.WithTracer(b.tracer()),
		)
		if err != nil {
			return fmt.Errorf("failed to create write router: %w", err)
		}
		b.writeAccess = r
		slog.Info("Write router configured", "atomic", cfg.Sync.Atomic)
	}
	return nil
}

// buildTracker restores persisted sync status when a status directory is configured
func buildTracker(ctx context.Context, cfg *config.Config) (*status.Tracker, error) {
	if cfg.Sync.StatusDir == "" {
		return status.NewTracker(), nil
	}

	tracker := status.NewTracker(status.WithPersistence(status.NewFileStatusPersistence(cfg.Sync.StatusDir)))
	if err := tracker.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load sync status: %w", err)
	}
	slog.Info("Sync status persistence enabled", "dir", cfg.Sync.StatusDir)
	return tracker, nil
}

// buildSyncComponents builds the sync engine and, when an interval is set, its coordinator
func buildSyncComponents(
	b *mirrorAppConfig,
	inventory sources.InventorySource,
	appointments sources.AppointmentSource,
	tracker *status.Tracker,
	metrics *telemetry.SyncMetrics,
) (coordinator.Coordinator, error) {
	slog.Info("Initializing sync components")

	if b.engine == nil {
		engine, err := pkgsync.NewEngine(b.discoverer, b.writeAccess, inventory, appointments,
			pkgsync.WithTracker(tracker),
			pkgsync.WithMetrics(metrics),
			pkgsync.WithTracer(b.tracer()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create sync engine: %w", err)
		}
		b.engine = engine
	}

	interval := b.config.Sync.GetInterval()
	if interval <= 0 {
		slog.Info("Background sync disabled, sync runs on request only")
		return nil, nil
	}

	slog.Info("Background sync enabled", "interval", interval)
	return coordinator.New(b.engine, interval), nil
}

// buildHTTPServer builds the HTTP server with router and middleware
//
//nolint:unparam // we prefer having a similar interface
func buildHTTPServer(
	_ context.Context,
	b *mirrorAppConfig,
	svc service.MirrorService,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}

	if b.tracerProvider != nil {
		b.middlewares = append([]func(http.Handler) http.Handler{telemetry.TracingMiddleware(b.tracerProvider)}, b.middlewares...)
		slog.Info("HTTP tracing middleware enabled")
	}

	// first in the chain so requests that time out are still counted
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		b.middlewares = append([]func(http.Handler) http.Handler{metricsMiddleware}, b.middlewares...)
		slog.Info("HTTP metrics middleware enabled")
	}

	serverOpts := []api.ServerOption{api.WithMiddlewares(b.middlewares...)}
	if b.metricsHandler != nil {
		serverOpts = append(serverOpts, api.WithMetricsHandler(b.metricsHandler))
	}

	server := &http.Server{
		Addr:         b.address,
		Handler:      api.NewServer(svc, serverOpts...),
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
