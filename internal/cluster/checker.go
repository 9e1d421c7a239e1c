package cluster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// statusQuery answers both questions a probe asks in one round trip. Hot standbys
// report transaction_read_only = on.
const statusQuery = `SELECT current_setting('transaction_read_only') <> 'on',
       coalesce(nullif(current_setting('cluster_name'), ''), host(inet_server_addr()), '')`

// ConnStringFunc builds the connection string for a node host
type ConnStringFunc func(host string) (string, error)

// PgxChecker probes nodes with a single short-lived pgx connection
type PgxChecker struct {
	connString ConnStringFunc
	timeout    time.Duration
}

var _ NodeChecker = (*PgxChecker)(nil)

// NewPgxChecker creates a checker whose connect and query phases are each bounded
// by timeout
func NewPgxChecker(connString ConnStringFunc, timeout time.Duration) *PgxChecker {
	return &PgxChecker{connString: connString, timeout: timeout}
}

// Check implements NodeChecker
func (c *PgxChecker) Check(ctx context.Context, address string) ProbeOutcome {
	connStr, err := c.connString(address)
	if err != nil {
		return Unreachable{Err: fmt.Errorf("connection string: %w", err)}
	}

	connCfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return Unreachable{Err: fmt.Errorf("parse connection string: %w", err)}
	}
	connCfg.ConnectTimeout = c.timeout

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return classify(err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		_ = conn.Close(closeCtx)
	}()

	queryCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var r Reachable
	if err := conn.QueryRow(queryCtx, statusQuery).Scan(&r.Writable, &r.Identity); err != nil {
		return classify(err)
	}
	return r
}

func classify(err error) ProbeOutcome {
	if pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return TimedOut{Err: err}
	}
	return Unreachable{Err: err}
}
