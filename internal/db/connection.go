// Package db contains code for connecting to the cluster read replica and the
// secondary store.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casamatriz/mirror-middleware/internal/config"
)

const (
	defaultMaxConns       = 10
	defaultConnectTimeout = 5 * time.Second
)

// PoolOption adjusts a pool configuration before the pool is created
type PoolOption func(*pgxpool.Config)

// WithMaxConns caps the number of connections of the pool
func WithMaxConns(n int32) PoolOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = n
		}
	}
}

// WithConnMaxLifetime sets how long a connection may be reused
func WithConnMaxLifetime(d time.Duration) PoolOption {
	return func(c *pgxpool.Config) {
		if d > 0 {
			c.MaxConnLifetime = d
		}
	}
}

// WithConnectTimeout bounds establishing each connection of the pool
func WithConnectTimeout(d time.Duration) PoolOption {
	return func(c *pgxpool.Config) {
		if d > 0 {
			c.ConnConfig.ConnectTimeout = d
		}
	}
}

// NewPool parses connString and creates a pool. Connections are opened lazily, so an
// unreachable server is only reported by the first query or by Ping.
func NewPool(ctx context.Context, connString string, opts ...PoolOption) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = defaultMaxConns
	poolCfg.ConnConfig.ConnectTimeout = defaultConnectTimeout
	for _, opt := range opts {
		opt(poolCfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	return pool, nil
}

// NewReadPool creates the long-lived pool against the configured read replica
func NewReadPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	connString, err := cfg.ReadConnectionString()
	if err != nil {
		return nil, fmt.Errorf("failed to build read connection string: %w", err)
	}

	pool, err := NewPool(ctx, connString,
		WithMaxConns(cfg.Database.MaxOpenConns),
		WithConnMaxLifetime(cfg.Database.GetConnMaxLifetime()),
	)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}

	slog.Info("Read pool created",
		"host", cfg.Database.ReadHost,
		"port", cfg.Cluster.Port,
		"database", cfg.Database.Name,
		"user", cfg.Database.User)
	return pool, nil
}

// NewSecondaryPool creates the long-lived pool against the secondary store
func NewSecondaryPool(ctx context.Context, cfg *config.SecondaryConfig) (*pgxpool.Pool, error) {
	connString, err := cfg.GetConnectionString()
	if err != nil {
		return nil, fmt.Errorf("failed to build secondary connection string: %w", err)
	}

	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("secondary pool: %w", err)
	}

	slog.Info("Secondary pool created",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database,
		"user", cfg.User)
	return pool, nil
}

// Pinger is implemented by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitForPool pings the pool with exponential backoff until it answers or maxElapsed
// passes. Callers decide whether a failure is fatal.
func WaitForPool(ctx context.Context, name string, pool Pinger, maxElapsed time.Duration) error {
	attempts := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		return struct{}{}, pool.Ping(ctx)
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Debug("Pool not ready, retrying", "pool", name, "error", err, "retry_in", next)
		}),
	)
	if err != nil {
		return fmt.Errorf("%s pool not reachable after %d attempts: %w", name, attempts, err)
	}

	slog.Info("Pool ready", "pool", name, "attempts", attempts)
	return nil
}
