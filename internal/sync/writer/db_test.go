package writer

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamatriz/mirror-middleware/database"
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/sources"
)

func setupWriter(t *testing.T) (MirrorWriter, *pgxpool.Pool) {
	t.Helper()

	pool, cleanupFunc := database.SetupTestDB(t)
	t.Cleanup(cleanupFunc)

	w, err := NewDBMirrorWriter(pool)
	require.NoError(t, err)
	return w, pool
}

func TestNewDBMirrorWriter(t *testing.T) {
	t.Parallel()

	w, err := NewDBMirrorWriter(nil)
	require.Error(t, err)
	assert.Nil(t, w)
	assert.Contains(t, err.Error(), "database handle is required")
}

func TestDefaultFactory(t *testing.T) {
	t.Parallel()

	_, err := DefaultFactory()(nil)
	require.Error(t, err)
}

func TestDBMirrorWriter_InventoryIdempotent(t *testing.T) {
	t.Parallel()

	w, pool := setupWriter(t)
	ctx := context.Background()
	listID := int64(1)

	lists := []sources.ShoppingList{{ID: 1, Name: "groceries"}, {ID: 2, Name: "hardware"}}
	items := []sources.ShoppingItem{
		{ID: 10, Description: "milk", Completed: true, ListID: &listID},
		{ID: 11, Description: "bread", ListID: &listID},
		{ID: 12, Description: "loose", ListID: nil},
	}

	// two identical passes leave exactly one row per foreign id
	for range 2 {
		for _, l := range lists {
			require.NoError(t, w.UpsertShoppingList(ctx, l))
		}
		for _, i := range items {
			require.NoError(t, w.UpsertShoppingItem(ctx, i))
		}
	}

	q := sqlc.New(pool)
	gotLists, err := q.ListShoppingLists(ctx)
	require.NoError(t, err)
	require.Len(t, gotLists, 2)

	gotItems, err := q.ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, gotItems, 3)
	assert.Equal(t, "milk", gotItems[0].Description)
	assert.True(t, gotItems[0].Completed)
	assert.Nil(t, gotItems[2].ListID)
}

func TestDBMirrorWriter_OverwritesFields(t *testing.T) {
	t.Parallel()

	w, pool := setupWriter(t)
	ctx := context.Background()

	require.NoError(t, w.UpsertShoppingList(ctx, sources.ShoppingList{ID: 7, Name: "before"}))

	q := sqlc.New(pool)
	first, err := q.ListShoppingLists(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, w.UpsertShoppingList(ctx, sources.ShoppingList{ID: 7, Name: "after"}))

	second, err := q.ListShoppingLists(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "after", second[0].Name)
	assert.False(t, second[0].SyncedAt.Time.Before(first[0].SyncedAt.Time))
}

func TestDBMirrorWriter_Appointment(t *testing.T) {
	t.Parallel()

	w, pool := setupWriter(t)
	ctx := context.Background()
	desc := "control"
	date := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	require.NoError(t, w.UpsertAppointment(ctx, sources.Appointment{ID: 1, Patient: "Ana", Description: &desc, Date: &date}))
	require.NoError(t, w.UpsertAppointment(ctx, sources.Appointment{ID: 2, Patient: "Luis"}))
	require.NoError(t, w.UpsertAppointment(ctx, sources.Appointment{ID: 2, Patient: "Luis M."}))

	rows, err := sqlc.New(pool).ListHospitalCitas(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, "Luis M.", rows[0].Paciente)
	assert.False(t, rows[0].Descripcion.Valid)
	assert.False(t, rows[0].Fecha.Valid)

	assert.Equal(t, "control", rows[1].Descripcion.String)
	assert.True(t, rows[1].Fecha.Time.Equal(date))
}
