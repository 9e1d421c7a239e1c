package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/cluster"
	"github.com/casamatriz/mirror-middleware/internal/otel"
	"github.com/casamatriz/mirror-middleware/internal/router"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	"github.com/casamatriz/mirror-middleware/internal/status"
	"github.com/casamatriz/mirror-middleware/internal/sync/writer"
	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

// Engine synchronizes the mirror tables with their foreign sources
//
//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks github.com/casamatriz/mirror-middleware/internal/sync Engine
type Engine interface {
	// SyncInventory mirrors every inventory list and item
	SyncInventory(ctx context.Context) (*InventoryResult, error)

	// SyncAppointments mirrors every cita of the secondary store
	SyncAppointments(ctx context.Context) (*AppointmentsResult, error)
}

// defaultEngine is the default implementation of Engine
type defaultEngine struct {
	discoverer   cluster.Discoverer
	router       router.WriteAccessor
	inventory    sources.InventorySource
	appointments sources.AppointmentSource

	tracker *status.Tracker
	metrics *telemetry.SyncMetrics
	tracer  trace.Tracer
}

// Option configures the engine
type Option func(*defaultEngine)

// WithTracker records every call as a run
func WithTracker(t *status.Tracker) Option {
	return func(e *defaultEngine) {
		e.tracker = t
	}
}

// WithMetrics records durations and record counts
func WithMetrics(m *telemetry.SyncMetrics) Option {
	return func(e *defaultEngine) {
		e.metrics = m
	}
}

// WithTracer emits a span per call
func WithTracer(t trace.Tracer) Option {
	return func(e *defaultEngine) {
		e.tracer = t
	}
}

// NewEngine creates an Engine
func NewEngine(
	discoverer cluster.Discoverer,
	writeAccess router.WriteAccessor,
	inventory sources.InventorySource,
	appointments sources.AppointmentSource,
	opts ...Option,
) (Engine, error) {
	switch {
	case discoverer == nil:
		return nil, fmt.Errorf("primary discoverer is required")
	case writeAccess == nil:
		return nil, fmt.Errorf("write router is required")
	case inventory == nil:
		return nil, fmt.Errorf("inventory source is required")
	case appointments == nil:
		return nil, fmt.Errorf("appointment source is required")
	}

	e := &defaultEngine{
		discoverer:   discoverer,
		router:       writeAccess,
		inventory:    inventory,
		appointments: appointments,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SyncInventory implements Engine
func (e *defaultEngine) SyncInventory(ctx context.Context) (*InventoryResult, error) {
	var result *InventoryResult
	err := e.run(ctx, SourceInventory, func(ctx context.Context, w writer.MirrorWriter) (map[string]int, error) {
		lists, err := e.inventory.FetchLists(ctx)
		if err != nil {
			return nil, foreignReadError(SourceInventory, err)
		}
		items, err := e.inventory.FetchItems(ctx, nil)
		if err != nil {
			return nil, foreignReadError(SourceInventory, err)
		}

		for _, l := range lists {
			if err := w.UpsertShoppingList(ctx, l); err != nil {
				return nil, writeError(SourceInventory, err)
			}
		}
		for _, i := range items {
			if err := w.UpsertShoppingItem(ctx, i); err != nil {
				return nil, writeError(SourceInventory, err)
			}
		}

		result = &InventoryResult{Lists: len(lists), Items: len(items)}
		return map[string]int{TableLists: result.Lists, TableItems: result.Items}, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SyncAppointments implements Engine
func (e *defaultEngine) SyncAppointments(ctx context.Context) (*AppointmentsResult, error) {
	var result *AppointmentsResult
	err := e.run(ctx, SourceAppointments, func(ctx context.Context, w writer.MirrorWriter) (map[string]int, error) {
		citas, err := e.appointments.FetchAppointments(ctx)
		if err != nil {
			return nil, foreignReadError(SourceAppointments, err)
		}

		for _, c := range citas {
			if err := w.UpsertAppointment(ctx, c); err != nil {
				return nil, writeError(SourceAppointments, err)
			}
		}

		result = &AppointmentsResult{Appointments: len(citas)}
		return map[string]int{TableCitas: result.Appointments}, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type mirrorFunc func(ctx context.Context, w writer.MirrorWriter) (map[string]int, error)

// run wraps one call of source with discovery, write access, status, metrics and tracing
func (e *defaultEngine) run(ctx context.Context, source string, fn mirrorFunc) (err error) {
	// discovery and the upserts run to completion once started; per-node
	// connect timeouts and the inventory client timeout bound the call
	ctx = context.WithoutCancel(ctx)

	var runID string
	if e.tracker != nil {
		runID = e.tracker.Start(ctx, source)
	}

	ctx, span := otel.StartSpan(ctx, e.tracer, "sync."+source,
		trace.WithAttributes(
			otel.AttrSyncSource.String(source),
			otel.AttrSyncRunID.String(runID),
		),
	)
	defer func() { otel.Finish(span, err) }()

	start := time.Now()
	primary := e.discoverer.DiscoverPrimary(ctx)
	span.SetAttributes(otel.AttrNodeAddress.String(primary))
	slog.InfoContext(ctx, "Starting sync", "source", source, "primary", primary, "run_id", runID)

	var records map[string]int
	err = e.router.WithWriteAccess(ctx, primary, func(ctx context.Context, w writer.MirrorWriter) error {
		var fnErr error
		records, fnErr = fn(ctx, w)
		return fnErr
	})

	duration := time.Since(start)
	e.metrics.RecordSyncDuration(ctx, source, duration, err == nil)

	if err != nil {
		// router failures reach here unclassified
		var syncErr *Error
		if !errors.As(err, &syncErr) {
			err = writeError(source, err)
		}
		slog.ErrorContext(ctx, "Sync failed", "source", source, "run_id", runID, "error", err)
		if e.tracker != nil {
			e.tracker.Fail(ctx, source, runID, err.Error())
		}
		return err
	}

	total := 0
	for table, n := range records {
		e.metrics.RecordRecords(ctx, table, int64(n))
		total += n
	}
	span.SetAttributes(otel.AttrResultCount.Int(total))

	slog.InfoContext(ctx, "Sync completed", "source", source, "run_id", runID,
		"records", records, "duration", duration)
	if e.tracker != nil {
		e.tracker.Complete(ctx, source, runID, "Sync completed successfully", records)
	}
	return nil
}
