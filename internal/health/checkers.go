package health

import (
	"context"
	"fmt"

	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/httpclient"
)

// DBChecker runs SELECT 1 through a pool
type DBChecker struct {
	name Subsystem
	db   sqlc.DBTX
}

var _ Checker = (*DBChecker)(nil)

// NewDBChecker creates a checker for the subsystem served by db
func NewDBChecker(name Subsystem, db sqlc.DBTX) *DBChecker {
	return &DBChecker{name: name, db: db}
}

// Name implements Checker
func (c *DBChecker) Name() Subsystem { return c.name }

// Check implements Checker
func (c *DBChecker) Check(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("no database configured")
	}
	var one int
	if err := c.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("select 1: %w", err)
	}
	return nil
}

// HTTPChecker expects a 2xx answer from a URL
type HTTPChecker struct {
	name   Subsystem
	client httpclient.Client
	url    string
}

var _ Checker = (*HTTPChecker)(nil)

// NewHTTPChecker creates a checker that GETs url
func NewHTTPChecker(name Subsystem, client httpclient.Client, url string) *HTTPChecker {
	return &HTTPChecker{name: name, client: client, url: url}
}

// Name implements Checker
func (c *HTTPChecker) Name() Subsystem { return c.name }

// Check implements Checker. Non-2xx answers are errors of the client.
func (c *HTTPChecker) Check(ctx context.Context) error {
	_, err := c.client.Get(ctx, c.url)
	return err
}
