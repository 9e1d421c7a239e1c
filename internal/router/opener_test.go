package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamatriz/mirror-middleware/database"
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/router"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	"github.com/casamatriz/mirror-middleware/internal/sync/writer"
)

func TestNewPgxPoolOpener(t *testing.T) {
	t.Parallel()

	t.Run("connection string error", func(t *testing.T) {
		t.Parallel()

		open := router.NewPgxPoolOpener(func(string) (string, error) {
			return "", errors.New("no password")
		}, 3)
		_, err := open(context.Background(), "pg-primary")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no password")
	})

	t.Run("bounded pool", func(t *testing.T) {
		t.Parallel()

		open := router.NewPgxPoolOpener(func(host string) (string, error) {
			return "postgres://u:p@" + host + ":5432/db?sslmode=disable", nil
		}, 3)
		pool, err := open(context.Background(), "pg-primary")
		require.NoError(t, err)
		t.Cleanup(pool.Close)

		pgxPool, ok := pool.(*pgxpool.Pool)
		require.True(t, ok)
		assert.Equal(t, int32(3), pgxPool.Config().MaxConns)
		assert.Equal(t, "pg-primary", pgxPool.Config().ConnConfig.Host)
	})
}

func TestWithWriteAccess_Postgres(t *testing.T) {
	t.Parallel()

	_, connStr, cleanupFunc := database.SetupTestDBWithURL(t)
	t.Cleanup(cleanupFunc)

	// the address is ignored; every node resolves to the container
	open := router.NewPgxPoolOpener(func(string) (string, error) { return connStr, nil }, 2)
	ctx := context.Background()

	countLists := func(t *testing.T) int {
		t.Helper()
		pool, err := pgxpool.New(ctx, connStr)
		require.NoError(t, err)
		defer pool.Close()
		rows, err := sqlc.New(pool).ListShoppingLists(ctx)
		require.NoError(t, err)
		return len(rows)
	}

	failAfterFirst := func(ctx context.Context, w writer.MirrorWriter) error {
		if err := w.UpsertShoppingList(ctx, sources.ShoppingList{ID: 100, Name: "first"}); err != nil {
			return err
		}
		return errors.New("second upsert failed")
	}

	t.Run("atomic rolls back partial work", func(t *testing.T) {
		r, err := router.NewRouter(open, router.WithAtomic(true))
		require.NoError(t, err)

		before := countLists(t)
		require.Error(t, r.WithWriteAccess(ctx, "node", failAfterFirst))
		assert.Equal(t, before, countLists(t))
	})

	t.Run("non-atomic keeps partial work", func(t *testing.T) {
		r, err := router.NewRouter(open)
		require.NoError(t, err)

		before := countLists(t)
		require.Error(t, r.WithWriteAccess(ctx, "node", failAfterFirst))
		assert.Equal(t, before+1, countLists(t))
	})
}
