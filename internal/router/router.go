package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/otel"
	"github.com/casamatriz/mirror-middleware/internal/sync/writer"
)

//go:generate mockgen -destination=mocks/mock_router.go -package=mocks -source=router.go WriteAccessor

// WriteFunc is the body of a write operation
type WriteFunc func(ctx context.Context, w writer.MirrorWriter) error

// WriteAccessor runs write operations against a given node
type WriteAccessor interface {
	// WithWriteAccess runs fn with a writer bound to address. The connections used by
	// fn are released before WithWriteAccess returns.
	WithWriteAccess(ctx context.Context, address string, fn WriteFunc) error
}

// WritePool is the part of *pgxpool.Pool the router needs
type WritePool interface {
	sqlc.DBTX
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// PoolOpener creates a write pool targeting address
type PoolOpener func(ctx context.Context, address string) (WritePool, error)

// Router is the default WriteAccessor
type Router struct {
	open    PoolOpener
	writers writer.Factory
	atomic  bool
	tracer  trace.Tracer
}

var _ WriteAccessor = (*Router)(nil)

// Option configures a Router
type Option func(*Router)

// WithAtomic wraps each operation in one transaction
func WithAtomic(atomic bool) Option {
	return func(r *Router) {
		r.atomic = atomic
	}
}

// WithWriterFactory replaces the database-backed writer
func WithWriterFactory(f writer.Factory) Option {
	return func(r *Router) {
		r.writers = f
	}
}

// WithTracer emits a span per write operation
func WithTracer(t trace.Tracer) Option {
	return func(r *Router) {
		r.tracer = t
	}
}

// NewRouter creates a router opening its pools with open
func NewRouter(open PoolOpener, opts ...Option) (*Router, error) {
	if open == nil {
		return nil, fmt.Errorf("pool opener is required")
	}

	r := &Router{
		open:    open,
		writers: writer.DefaultFactory(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// WithWriteAccess implements WriteAccessor. Failing to open or reach the pool is
// returned as is; there is no retry against another node.
func (r *Router) WithWriteAccess(ctx context.Context, address string, fn WriteFunc) (err error) {
	ctx, span := otel.StartSpan(ctx, r.tracer, "router.WithWriteAccess",
		trace.WithAttributes(
			otel.AttrNodeAddress.String(address),
			otel.AttrAtomicWrite.Bool(r.atomic),
		),
	)
	defer func() { otel.Finish(span, err) }()

	pool, err := r.open(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to open write pool for %s: %w", address, err)
	}
	defer release(ctx, address, pool)

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("write node %s unreachable: %w", address, err)
	}

	if !r.atomic {
		w, err := r.writers(pool)
		if err != nil {
			return fmt.Errorf("failed to create mirror writer: %w", err)
		}
		return fn(ctx, w)
	}

	return r.inTx(ctx, pool, fn)
}

func (r *Router) inTx(ctx context.Context, pool WritePool, fn WriteFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Rollback failed", "error", rbErr)
		}
	}()

	w, err := r.writers(tx)
	if err != nil {
		return fmt.Errorf("failed to create mirror writer: %w", err)
	}
	if err := fn(ctx, w); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// release closes the pool. A failing close is logged and never reaches the caller.
func release(ctx context.Context, address string, pool WritePool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.WarnContext(ctx, "Write pool teardown failed", "node", address, "panic", rec)
		}
	}()
	pool.Close()
	slog.DebugContext(ctx, "Write pool released", "node", address)
}
