// Package health reports whether each backend the middleware depends on answers.
//
// The checks run concurrently and independently: one subsystem being slow or
// down never changes the status reported for another.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

//go:generate mockgen -destination=mocks/mock_checker.go -package=mocks -source=health.go Checker

// Subsystem names a checked backend
type Subsystem string

// Checked backends
const (
	SubsystemLocal     Subsystem = "local"
	SubsystemInventory Subsystem = "inventory"
	SubsystemSecondary Subsystem = "secondary"
)

// Status is the outcome of one check
type Status string

// Check outcomes
const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// DefaultCheckTimeout bounds every check
const DefaultCheckTimeout = 2 * time.Second

// Report maps every configured subsystem to its status. It is rebuilt on every call.
type Report map[Subsystem]Status

// Checker checks one subsystem
type Checker interface {
	Name() Subsystem
	// Check returns nil when the subsystem answered
	Check(ctx context.Context) error
}

// Aggregator runs all checkers and collects their results
type Aggregator struct {
	checkers []Checker
	timeout  time.Duration
	metrics  *telemetry.HealthMetrics
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithTimeout bounds every check
func WithTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithMetrics records each check result
func WithMetrics(m *telemetry.HealthMetrics) Option {
	return func(a *Aggregator) {
		a.metrics = m
	}
}

// NewAggregator creates an aggregator over checkers
func NewAggregator(checkers []Checker, opts ...Option) *Aggregator {
	a := &Aggregator{
		checkers: checkers,
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CheckHealth runs every check concurrently. Failures become StatusDown; the
// method itself never fails.
func (a *Aggregator) CheckHealth(ctx context.Context) Report {
	var (
		mu     sync.Mutex
		report = make(Report, len(a.checkers))
		g      errgroup.Group
	)

	for _, c := range a.checkers {
		g.Go(func() error {
			st := a.check(ctx, c)
			a.metrics.RecordSubsystem(ctx, string(c.Name()), st == StatusUp)

			mu.Lock()
			report[c.Name()] = st
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return report
}

func (a *Aggregator) check(ctx context.Context, c Checker) (st Status) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "Health check panicked", "subsystem", c.Name(), "panic", rec)
			st = StatusDown
		}
	}()

	checkCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if err := c.Check(checkCtx); err != nil {
		slog.WarnContext(ctx, "Health check failed", "subsystem", c.Name(), "error", err)
		return StatusDown
	}
	return StatusUp
}
