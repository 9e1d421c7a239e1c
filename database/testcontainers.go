package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	tclog "github.com/testcontainers/testcontainers-go/log"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const testImage = "postgres:16-alpine"

type quietLogger struct{}

func (quietLogger) Printf(string, ...any) {}

var _ tclog.Logger = quietLogger{}

// SetupTestDBContainer starts an empty Postgres container. The returned cleanup
// closes the pool and removes the container.
func SetupTestDBContainer(t *testing.T, ctx context.Context) (*pgxpool.Pool, string, func()) {
	t.Helper()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase("mirror_test"),
		postgres.WithUsername("mirror"),
		postgres.WithPassword("mirror"),
		postgres.BasicWaitStrategies(),
		tc.WithLogger(quietLogger{}),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	return pool, connStr, func() {
		pool.Close()
		tc.CleanupContainer(t, container)
	}
}

// SetupTestDB starts a container holding the migrated mirror tables
func SetupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()
	pool, _, cleanup := SetupTestDBWithURL(t)
	return pool, cleanup
}

// SetupTestDBWithURL is SetupTestDB plus the connection string, for tests that
// open their own pools
func SetupTestDBWithURL(t *testing.T) (*pgxpool.Pool, string, func()) {
	t.Helper()

	pool, connStr, cleanup := SetupTestDBContainer(t, context.Background())
	if err := MigrateUp(connStr); err != nil {
		cleanup()
		require.NoError(t, err)
	}
	return pool, connStr, cleanup
}

// SetupSecondaryTestDB starts a container shaped like the hospital store, with
// an empty citas table
func SetupSecondaryTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	t.Helper()

	ctx := context.Background()
	pool, _, cleanup := SetupTestDBContainer(t, ctx)
	if _, err := pool.Exec(ctx, SecondarySchema()); err != nil {
		cleanup()
		require.NoError(t, err)
	}
	return pool, cleanup
}
