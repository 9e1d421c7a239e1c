package writer

import (
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
)

// Factory builds a MirrorWriter bound to a write handle. The write router calls
// it once per operation with either the write pool or the open transaction.
type Factory func(db sqlc.DBTX) (MirrorWriter, error)

// DefaultFactory returns the database-backed writer
func DefaultFactory() Factory {
	return NewDBMirrorWriter
}
