package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	pkgsync "github.com/casamatriz/mirror-middleware/internal/sync"
)

// Coordinator manages background synchronization
type Coordinator interface {
	// Start runs sync rounds until the context is cancelled or Stop is called
	Start(ctx context.Context) error

	// Stop gracefully stops the coordinator and waits for the running round
	Stop() error
}

// defaultCoordinator is the default implementation of Coordinator
type defaultCoordinator struct {
	engine   pkgsync.Engine
	interval time.Duration
	jitter   time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	done       chan struct{}
}

// Option is a function that configures the coordinator
type Option func(*defaultCoordinator)

// WithJitter sets the maximum random offset applied to every tick; zero disables it
func WithJitter(jitter time.Duration) Option {
	return func(c *defaultCoordinator) {
		c.jitter = jitter
	}
}

// New creates a coordinator running engine every interval
func New(engine pkgsync.Engine, interval time.Duration, opts ...Option) Coordinator {
	c := &defaultCoordinator{
		engine:   engine,
		interval: interval,
		jitter:   interval / defaultJitterFraction,
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins background sync coordination
func (c *defaultCoordinator) Start(ctx context.Context) error {
	if c.interval <= 0 {
		return fmt.Errorf("sync interval must be positive, got %s", c.interval)
	}

	coordCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancelFunc = cancel
	c.mu.Unlock()
	defer func() {
		cancel()
		close(c.done)
		slog.Info("Background sync coordinator shut down")
	}()

	slog.Info("Starting background sync coordinator", "interval", c.interval, "jitter", c.jitter)

	c.runRound(coordCtx)

	ticker := time.NewTicker(calculateInterval(c.interval, c.jitter))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.runRound(coordCtx)
			ticker.Reset(calculateInterval(c.interval, c.jitter))
		case <-coordCtx.Done():
			slog.Info("Sync coordinator stopping")
			return nil
		}
	}
}

// Stop gracefully stops the coordinator
func (c *defaultCoordinator) Stop() error {
	c.mu.Lock()
	cancel := c.cancelFunc
	c.mu.Unlock()

	if cancel != nil {
		slog.Info("Stopping sync coordinator")
		cancel()
		<-c.done
	}
	return nil
}
