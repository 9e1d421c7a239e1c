// Package writer contains the MirrorWriter interface and implementations
package writer

import (
	"context"

	"github.com/casamatriz/mirror-middleware/internal/sources"
)

//go:generate mockgen -destination=mocks/mock_mirror_writer.go -package=mocks -source=writer.go MirrorWriter

// MirrorWriter persists foreign records into the local mirror tables.
// Every method is an upsert keyed by the foreign id: an existing row has all of
// its mutable fields replaced and synced_at refreshed.
type MirrorWriter interface {
	UpsertShoppingList(ctx context.Context, list sources.ShoppingList) error
	UpsertShoppingItem(ctx context.Context, item sources.ShoppingItem) error
	UpsertAppointment(ctx context.Context, appt sources.Appointment) error
}
