package router

import (
	"context"

	"github.com/casamatriz/mirror-middleware/internal/cluster"
	"github.com/casamatriz/mirror-middleware/internal/db"
)

// NewPgxPoolOpener opens pgx pools of at most maxConns connections. The pool is
// created lazily; WithWriteAccess pings it before use.
func NewPgxPoolOpener(connString cluster.ConnStringFunc, maxConns int32) PoolOpener {
	return func(ctx context.Context, address string) (WritePool, error) {
		connStr, err := connString(address)
		if err != nil {
			return nil, err
		}
		pool, err := db.NewPool(ctx, connStr, db.WithMaxConns(maxConns))
		if err != nil {
			return nil, err
		}
		return pool, nil
	}
}
