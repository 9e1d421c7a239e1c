// Package otel holds span helpers and the attribute keys shared by the mirror
// middleware's instrumented components.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	AttrNodeAddress  = attribute.Key("cluster.node.address")
	AttrNodeIdentity = attribute.Key("cluster.node.identity")
	AttrCandidates   = attribute.Key("cluster.candidates")
	AttrSyncSource   = attribute.Key("sync.source")
	AttrSyncRunID    = attribute.Key("sync.run_id")
	AttrResultCount  = attribute.Key("result.count")
	AttrMirrorTable  = attribute.Key("mirror.table")
	AttrAtomicWrite  = attribute.Key("write.atomic")
)

// StartSpan is tracer.Start, except that a nil tracer yields the span already in ctx
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError attaches err as an event and marks the span failed. The status
// text stays generic; connection strings and SQL only go into the event.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, "operation failed")
}

// Finish is meant for deferral with a named error result:
//
//	defer func() { otel.Finish(span, err) }()
func Finish(span trace.Span, err error) {
	if span == nil {
		return
	}
	RecordError(span, err)
	span.End()
}
