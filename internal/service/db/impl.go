package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/cluster"
	"github.com/casamatriz/mirror-middleware/internal/db/pgtypes"
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/health"
	"github.com/casamatriz/mirror-middleware/internal/otel"
	"github.com/casamatriz/mirror-middleware/internal/service"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	"github.com/casamatriz/mirror-middleware/internal/status"
	pkgsync "github.com/casamatriz/mirror-middleware/internal/sync"
)

// Values reported by Health
const (
	HealthStatusOK = "Middleware OK"
	DatabaseLabel  = "PostgreSQL Cluster"
)

// ErrInvalidUpstreamJSON is returned when the inventory answers with something that is not JSON
var ErrInvalidUpstreamJSON = errors.New("inventory returned invalid JSON")

// readPool is the part of *pgxpool.Pool the service reads through
type readPool interface {
	sqlc.DBTX
	Ping(ctx context.Context) error
}

// options holds configuration options for the service
type options struct {
	readPool     readPool
	discoverer   cluster.Discoverer
	inventory    sources.InventorySource
	appointments sources.AppointmentSource
	engine       pkgsync.Engine
	health       *health.Aggregator
	tracker      *status.Tracker
	tracer       trace.Tracer
}

// Option is a functional option for configuring the service
type Option func(*options) error

// WithReadPool sets the long-lived read replica pool. The caller is responsible
// for closing it.
func WithReadPool(pool readPool) Option {
	return func(o *options) error {
		if pool == nil {
			return fmt.Errorf("read pool is required")
		}
		o.readPool = pool
		return nil
	}
}

// WithDiscoverer sets the prober used for the health label
func WithDiscoverer(d cluster.Discoverer) Option {
	return func(o *options) error {
		o.discoverer = d
		return nil
	}
}

// WithSources sets the foreign systems read by the pass-through endpoints
func WithSources(inventory sources.InventorySource, appointments sources.AppointmentSource) Option {
	return func(o *options) error {
		o.inventory = inventory
		o.appointments = appointments
		return nil
	}
}

// WithEngine sets the sync engine
func WithEngine(e pkgsync.Engine) Option {
	return func(o *options) error {
		o.engine = e
		return nil
	}
}

// WithHealth sets the health aggregator
func WithHealth(a *health.Aggregator) Option {
	return func(o *options) error {
		o.health = a
		return nil
	}
}

// WithTracker sets the sync status tracker
func WithTracker(t *status.Tracker) Option {
	return func(o *options) error {
		o.tracker = t
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// dbService is the default MirrorService
type dbService struct {
	queries      *sqlc.Queries
	readPool     readPool
	discoverer   cluster.Discoverer
	inventory    sources.InventorySource
	appointments sources.AppointmentSource
	engine       pkgsync.Engine
	health       *health.Aggregator
	tracker      *status.Tracker
	tracer       trace.Tracer
}

var _ service.MirrorService = (*dbService)(nil)

// New creates a MirrorService
func New(opts ...Option) (service.MirrorService, error) {
	o := &options{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	switch {
	case o.readPool == nil:
		return nil, fmt.Errorf("read pool is required")
	case o.discoverer == nil:
		return nil, fmt.Errorf("discoverer is required")
	case o.inventory == nil || o.appointments == nil:
		return nil, fmt.Errorf("inventory and appointment sources are required")
	case o.engine == nil:
		return nil, fmt.Errorf("sync engine is required")
	case o.health == nil:
		return nil, fmt.Errorf("health aggregator is required")
	}

	tracker := o.tracker
	if tracker == nil {
		tracker = status.NewTracker()
	}

	return &dbService{
		queries:      sqlc.New(o.readPool),
		readPool:     o.readPool,
		discoverer:   o.discoverer,
		inventory:    o.inventory,
		appointments: o.appointments,
		engine:       o.engine,
		health:       o.health,
		tracker:      tracker,
		tracer:       o.tracer,
	}, nil
}

// CheckReadiness implements MirrorService
func (s *dbService) CheckReadiness(ctx context.Context) error {
	if err := s.readPool.Ping(ctx); err != nil {
		return fmt.Errorf("read pool unreachable: %w", err)
	}
	return nil
}

// Health implements MirrorService
func (s *dbService) Health(ctx context.Context) *service.HealthInfo {
	return &service.HealthInfo{
		Status:       HealthStatusOK,
		Database:     DatabaseLabel,
		MasterActual: s.discoverer.DiscoverPrimaryIdentity(ctx),
	}
}

// SystemStatus implements MirrorService
func (s *dbService) SystemStatus(ctx context.Context) *service.SystemStatus {
	return service.SystemStatusFromReport(s.health.CheckHealth(ctx))
}

// ExternalLists implements MirrorService
func (s *dbService) ExternalLists(ctx context.Context) (json.RawMessage, error) {
	body, err := s.inventory.RawLists(ctx)
	if err != nil {
		return nil, err
	}
	return validJSON(body)
}

// ExternalItems implements MirrorService
func (s *dbService) ExternalItems(ctx context.Context, listID string) (json.RawMessage, error) {
	body, err := s.inventory.RawItems(ctx, listID)
	if err != nil {
		return nil, err
	}
	return validJSON(body)
}

func validJSON(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidUpstreamJSON
	}
	return json.RawMessage(body), nil
}

// ExternalCitas implements MirrorService
func (s *dbService) ExternalCitas(ctx context.Context) ([]sources.Appointment, error) {
	return s.appointments.ListAppointmentsDesc(ctx)
}

// SyncInventory implements MirrorService
func (s *dbService) SyncInventory(ctx context.Context) (*pkgsync.InventoryResult, error) {
	return s.engine.SyncInventory(ctx)
}

// SyncAppointments implements MirrorService
func (s *dbService) SyncAppointments(ctx context.Context) (*pkgsync.AppointmentsResult, error) {
	return s.engine.SyncAppointments(ctx)
}

// LocalLists implements MirrorService
func (s *dbService) LocalLists(ctx context.Context) (_ []service.MirrorList, err error) {
	ctx, span := s.startDBSpan(ctx, "dbService.LocalLists",
		trace.WithAttributes(otel.AttrMirrorTable.String("sync_shopping_lists")))
	defer func() { otel.Finish(span, err) }()

	rows, err := s.queries.ListShoppingLists(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read mirrored lists", "error", err)
		return nil, err
	}

	out := make([]service.MirrorList, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.MirrorList{
			ID:       r.ID,
			Name:     r.Name,
			SyncedAt: pgtypes.TimeFromTimestamptz(r.SyncedAt),
		})
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(out)))
	return out, nil
}

// LocalItems implements MirrorService
func (s *dbService) LocalItems(ctx context.Context) (_ []service.MirrorItem, err error) {
	ctx, span := s.startDBSpan(ctx, "dbService.LocalItems",
		trace.WithAttributes(otel.AttrMirrorTable.String("sync_shopping_items")))
	defer func() { otel.Finish(span, err) }()

	rows, err := s.queries.ListShoppingItems(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read mirrored items", "error", err)
		return nil, err
	}

	out := make([]service.MirrorItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.MirrorItem{
			ID:          r.ID,
			Description: r.Description,
			Completed:   r.Completed,
			ListID:      r.ListID,
			SyncedAt:    pgtypes.TimeFromTimestamptz(r.SyncedAt),
		})
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(out)))
	return out, nil
}

// LocalCitas implements MirrorService
func (s *dbService) LocalCitas(ctx context.Context) (_ []service.MirrorCita, err error) {
	ctx, span := s.startDBSpan(ctx, "dbService.LocalCitas",
		trace.WithAttributes(otel.AttrMirrorTable.String("sync_hospital_citas")))
	defer func() { otel.Finish(span, err) }()

	rows, err := s.queries.ListHospitalCitas(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read mirrored citas", "error", err)
		return nil, err
	}

	out := make([]service.MirrorCita, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.MirrorCita{
			ID:          r.ID,
			Paciente:    r.Paciente,
			Descripcion: pgtypes.PtrFromText(r.Descripcion),
			Fecha:       pgtypes.PtrFromTimestamp(r.Fecha),
			SyncedAt:    pgtypes.TimeFromTimestamptz(r.SyncedAt),
		})
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(out)))
	return out, nil
}

// SyncStatus implements MirrorService
func (s *dbService) SyncStatus(_ context.Context) map[string]status.SyncStatus {
	return s.tracker.All()
}
