package sync_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamatriz/mirror-middleware/database"
	"github.com/casamatriz/mirror-middleware/internal/db/sqlc"
	"github.com/casamatriz/mirror-middleware/internal/httpclient"
	"github.com/casamatriz/mirror-middleware/internal/router"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	"github.com/casamatriz/mirror-middleware/internal/sync"
)

// staticDiscoverer always reports the same primary
type staticDiscoverer string

func (s staticDiscoverer) DiscoverPrimary(context.Context) string         { return string(s) }
func (s staticDiscoverer) DiscoverPrimaryIdentity(context.Context) string { return string(s) + ":5432" }

func TestEngine_EndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	mirror, connStr, cleanupMirror := database.SetupTestDBWithURL(t)
	t.Cleanup(cleanupMirror)

	secondary, cleanupSecondary := database.SetupSecondaryTestDB(t)
	t.Cleanup(cleanupSecondary)
	_, err := secondary.Exec(ctx, `INSERT INTO citas (paciente, descripcion) VALUES ('Ana', 'control'), ('Luis', NULL)`)
	require.NoError(t, err)

	inventorySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lists":
			_, _ = w.Write([]byte(`[{"id":1,"name":"groceries"},{"id":2,"name":"hardware"}]`))
		case "/items":
			_, _ = w.Write([]byte(`[
				{"id":10,"description":"milk","completed":1,"list_id":1},
				{"id":11,"description":"bread","completed":0,"list_id":1},
				{"id":12,"description":"nails","completed":0,"list_id":2}
			]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(inventorySrv.Close)

	inventory, err := sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), inventorySrv.URL)
	require.NoError(t, err)
	appointments, err := sources.NewDBAppointmentSource(secondary)
	require.NoError(t, err)

	writeRouter, err := router.NewRouter(router.NewPgxPoolOpener(func(string) (string, error) {
		return connStr, nil
	}, 2))
	require.NoError(t, err)

	engine, err := sync.NewEngine(staticDiscoverer("pg-primary"), writeRouter, inventory, appointments)
	require.NoError(t, err)

	// a second identical run must not duplicate anything
	for range 2 {
		inv, err := engine.SyncInventory(ctx)
		require.NoError(t, err)
		assert.Equal(t, &sync.InventoryResult{Lists: 2, Items: 3}, inv)

		appts, err := engine.SyncAppointments(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, appts.Appointments)
	}

	q := sqlc.New(mirror)

	lists, err := q.ListShoppingLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "groceries", lists[0].Name)

	items, err := q.ListShoppingItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].Completed)
	assert.False(t, items[1].Completed)

	citas, err := q.ListHospitalCitas(ctx)
	require.NoError(t, err)
	require.Len(t, citas, 2)
	assert.Equal(t, "Luis", citas[0].Paciente)
	for _, c := range citas {
		assert.True(t, c.SyncedAt.Valid)
	}
}

func TestEngine_ForeignReadFailureLeavesMirrorUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mirror, connStr, cleanupMirror := database.SetupTestDBWithURL(t)
	t.Cleanup(cleanupMirror)

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	inventory, err := sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), down.URL)
	require.NoError(t, err)

	writeRouter, err := router.NewRouter(router.NewPgxPoolOpener(func(string) (string, error) {
		return connStr, nil
	}, 2))
	require.NoError(t, err)

	engine, err := sync.NewEngine(staticDiscoverer("pg-primary"), writeRouter, inventory, unusedAppointments{})
	require.NoError(t, err)

	_, err = engine.SyncInventory(ctx)
	require.Error(t, err)

	lists, err := sqlc.New(mirror).ListShoppingLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

type unusedAppointments struct{}

func (unusedAppointments) FetchAppointments(context.Context) ([]sources.Appointment, error) {
	return nil, nil
}

func (unusedAppointments) ListAppointmentsDesc(context.Context) ([]sources.Appointment, error) {
	return nil, nil
}
