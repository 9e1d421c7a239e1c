package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/otel"
	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

//go:generate mockgen -destination=mocks/mock_checker.go -package=mocks -source=prober.go NodeChecker,Discoverer

// NodeChecker probes a single node. Implementations must not return until the probe
// has completed or timed out, and must release any connection they opened.
type NodeChecker interface {
	Check(ctx context.Context, address string) ProbeOutcome
}

// Discoverer locates the writable primary
type Discoverer interface {
	// DiscoverPrimary returns the first writable candidate, or the first candidate
	// unconfirmed when none is writable
	DiscoverPrimary(ctx context.Context) string
	// DiscoverPrimaryIdentity returns "<identity>:<port>" of the first writable
	// candidate, or "unknown"
	DiscoverPrimaryIdentity(ctx context.Context) string
}

// Prober walks the candidate list with a NodeChecker
type Prober struct {
	candidates []string
	port       int
	checker    NodeChecker
	metrics    *telemetry.ClusterMetrics
	tracer     trace.Tracer
}

var _ Discoverer = (*Prober)(nil)

// ProberOption configures a Prober
type ProberOption func(*Prober)

// WithPort sets the port used in identity labels
func WithPort(port int) ProberOption {
	return func(p *Prober) {
		p.port = port
	}
}

// WithMetrics records probe outcomes and discovery durations
func WithMetrics(m *telemetry.ClusterMetrics) ProberOption {
	return func(p *Prober) {
		p.metrics = m
	}
}

// WithTracer emits a span per discovery
func WithTracer(t trace.Tracer) ProberOption {
	return func(p *Prober) {
		p.tracer = t
	}
}

// NewProber creates a prober over an ordered, non-empty candidate list
func NewProber(candidates []string, checker NodeChecker, opts ...ProberOption) (*Prober, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("at least one candidate is required")
	}
	if checker == nil {
		return nil, fmt.Errorf("node checker is required")
	}

	p := &Prober{
		candidates: append([]string(nil), candidates...),
		port:       5432,
		checker:    checker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Discover probes candidates in order until one is writable or the list is exhausted.
// A cancelled context ends the walk early as exhausted.
func (p *Prober) Discover(ctx context.Context) Discovery {
	// each check is bounded by its own connect timeout; a caller that gives up
	// must not turn a reachable primary into the unconfirmed fallback
	ctx = context.WithoutCancel(ctx)
	ctx, span := otel.StartSpan(ctx, p.tracer, "cluster.Discover",
		trace.WithAttributes(otel.AttrCandidates.Int(len(p.candidates))),
	)
	defer span.End()

	start := time.Now()
	d := NewDiscovery(p.candidates)

	for d.State == StateProbing {
		node := d.Current()
		outcome := p.checker.Check(ctx, node.Address)
		p.metrics.RecordProbe(ctx, node.Address, outcome.Kind())

		if !IsWritable(outcome) {
			slog.DebugContext(ctx, "Skipping candidate", "node", node.Address, "outcome", outcome)
		}
		d = d.Step(outcome)
	}

	found := d.State == StateFound
	p.metrics.RecordDiscovery(ctx, time.Since(start), found)

	if found {
		span.SetAttributes(
			otel.AttrNodeAddress.String(d.Primary.Address),
			otel.AttrNodeIdentity.String(d.Identity),
		)
		slog.DebugContext(ctx, "Primary found", "node", d.Primary.Address, "identity", d.Identity)
	} else {
		slog.WarnContext(ctx, "No candidate confirmed writable", "candidates", p.candidates)
	}

	return d
}

// DiscoverPrimary implements Discoverer
func (p *Prober) DiscoverPrimary(ctx context.Context) string {
	d := p.Discover(ctx)
	if d.State != StateFound {
		slog.InfoContext(ctx, "Falling back to default candidate", "node", d.Address())
	}
	return d.Address()
}

// DiscoverPrimaryIdentity implements Discoverer
func (p *Prober) DiscoverPrimaryIdentity(ctx context.Context) string {
	return p.Discover(ctx).Label(p.port)
}

// Candidates returns a copy of the configured candidate list
func (p *Prober) Candidates() []string {
	return append([]string(nil), p.candidates...)
}
