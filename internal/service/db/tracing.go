// Package database provides the pool-backed implementation of the MirrorService interface
package database

import (
	"context"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/otel"
)

const (
	// ServiceTracerName is the name used for the service tracer
	ServiceTracerName = "github.com/casamatriz/mirror-middleware/service/db"
)

// startDBSpan starts a span for a read against a Postgres pool.
// If the tracer is nil, it returns a no-op span from the context.
func (s *dbService) startDBSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	opts = append([]trace.SpanStartOption{trace.WithAttributes(semconv.DBSystemPostgreSQL)}, opts...)
	return otel.StartSpan(ctx, s.tracer, name, opts...)
}
