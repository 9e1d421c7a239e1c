package writer

import (
	"context"
	"fmt"

	"github.com/casamatriz/mirror-middleware/internal/db/pgtypes"
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/sources"
)

// dbMirrorWriter is a MirrorWriter that runs the generated upserts against a
// pool or a transaction
type dbMirrorWriter struct {
	queries *sqlc.Queries
}

// NewDBMirrorWriter creates a MirrorWriter issuing its statements through db.
// The caller owns db and is responsible for closing or committing it.
func NewDBMirrorWriter(db sqlc.DBTX) (MirrorWriter, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	return &dbMirrorWriter{queries: sqlc.New(db)}, nil
}

func (d *dbMirrorWriter) UpsertShoppingList(ctx context.Context, list sources.ShoppingList) error {
	err := d.queries.UpsertShoppingList(ctx, sqlc.UpsertShoppingListParams{
		ID:   list.ID,
		Name: list.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert list %d: %w", list.ID, err)
	}
	return nil
}

func (d *dbMirrorWriter) UpsertShoppingItem(ctx context.Context, item sources.ShoppingItem) error {
	err := d.queries.UpsertShoppingItem(ctx, sqlc.UpsertShoppingItemParams{
		ID:          item.ID,
		Description: item.Description,
		Completed:   item.Completed,
		ListID:      item.ListID,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert item %d: %w", item.ID, err)
	}
	return nil
}

func (d *dbMirrorWriter) UpsertAppointment(ctx context.Context, appt sources.Appointment) error {
	err := d.queries.UpsertHospitalCita(ctx, sqlc.UpsertHospitalCitaParams{
		ID:          appt.ID,
		Paciente:    appt.Patient,
		Descripcion: pgtypes.TextFromPtr(appt.Description),
		Fecha:       pgtypes.TimestampFromPtr(appt.Date),
	})
	if err != nil {
		return fmt.Errorf("failed to upsert cita %d: %w", appt.ID, err)
	}
	return nil
}
