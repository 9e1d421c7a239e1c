package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// ClusterMetricsMeterName is the name used for the primary discovery meter
	ClusterMetricsMeterName = "github.com/casamatriz/mirror-middleware/cluster"

	// SyncMetricsMeterName is the name used for the sync metrics meter
	SyncMetricsMeterName = "github.com/casamatriz/mirror-middleware/sync"

	// HealthMetricsMeterName is the name used for the health metrics meter
	HealthMetricsMeterName = "github.com/casamatriz/mirror-middleware/health"
)

// ClusterMetrics holds the OpenTelemetry instruments for primary discovery
type ClusterMetrics struct {
	discoveryDuration metric.Float64Histogram
	probesTotal       metric.Int64Counter
}

// NewClusterMetrics creates a new ClusterMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewClusterMetrics(provider metric.MeterProvider) (*ClusterMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(ClusterMetricsMeterName)

	discoveryDuration, err := meter.Float64Histogram(
		"mirror_discovery_duration_seconds",
		metric.WithDescription("Duration of primary discovery in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 4, 8),
	)
	if err != nil {
		return nil, err
	}

	probesTotal, err := meter.Int64Counter(
		"mirror_node_probes_total",
		metric.WithDescription("Number of node probes by outcome"),
		metric.WithUnit("{probe}"),
	)
	if err != nil {
		return nil, err
	}

	return &ClusterMetrics{
		discoveryDuration: discoveryDuration,
		probesTotal:       probesTotal,
	}, nil
}

// RecordProbe records a single node probe outcome (writable, read-only, unreachable, timed-out)
func (m *ClusterMetrics) RecordProbe(ctx context.Context, node, outcome string) {
	if m == nil || m.probesTotal == nil {
		return
	}

	m.probesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("node", node),
		attribute.String("outcome", outcome),
	))
}

// RecordDiscovery records how long a discovery took and whether a writable node was found
func (m *ClusterMetrics) RecordDiscovery(ctx context.Context, duration time.Duration, found bool) {
	if m == nil || m.discoveryDuration == nil {
		return
	}

	m.discoveryDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.Bool("found", found),
	))
}

// SyncMetrics holds the OpenTelemetry instruments for sync operation metrics
type SyncMetrics struct {
	syncDuration   metric.Float64Histogram
	recordsFetched metric.Int64Gauge
}

// NewSyncMetrics creates a new SyncMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	syncDuration, err := meter.Float64Histogram(
		"mirror_sync_duration_seconds",
		metric.WithDescription("Duration of sync operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300),
	)
	if err != nil {
		return nil, err
	}

	recordsFetched, err := meter.Int64Gauge(
		"mirror_sync_records",
		metric.WithDescription("Number of foreign records read by the last sync, per table"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		syncDuration:   syncDuration,
		recordsFetched: recordsFetched,
	}, nil
}

// RecordSyncDuration records the duration of a sync operation for a foreign source
func (m *SyncMetrics) RecordSyncDuration(ctx context.Context, source string, duration time.Duration, success bool) {
	if m == nil || m.syncDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("source", source),
		attribute.Bool("success", success),
	}

	m.syncDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordRecords records how many foreign records a sync read for a mirror table
func (m *SyncMetrics) RecordRecords(ctx context.Context, table string, count int64) {
	if m == nil || m.recordsFetched == nil {
		return
	}

	m.recordsFetched.Record(ctx, count, metric.WithAttributes(attribute.String("table", table)))
}

// HealthMetrics holds the OpenTelemetry instruments for backend health
type HealthMetrics struct {
	subsystemUp metric.Int64Gauge
}

// NewHealthMetrics creates a new HealthMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewHealthMetrics(provider metric.MeterProvider) (*HealthMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(HealthMetricsMeterName)

	subsystemUp, err := meter.Int64Gauge(
		"mirror_subsystem_up",
		metric.WithDescription("Whether a backend subsystem answered its last health check (1) or not (0)"),
	)
	if err != nil {
		return nil, err
	}

	return &HealthMetrics{subsystemUp: subsystemUp}, nil
}

// RecordSubsystem records the result of one subsystem health check
func (m *HealthMetrics) RecordSubsystem(ctx context.Context, subsystem string, up bool) {
	if m == nil || m.subsystemUp == nil {
		return
	}

	var value int64
	if up {
		value = 1
	}
	m.subsystemUp.Record(ctx, value, metric.WithAttributes(attribute.String("subsystem", subsystem)))
}
