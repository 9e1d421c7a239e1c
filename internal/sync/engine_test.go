package sync_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"

	clustermocks "github.com/casamatriz/mirror-middleware/internal/cluster/mocks"
	"github.com/casamatriz/mirror-middleware/internal/router"
	routermocks "github.com/casamatriz/mirror-middleware/internal/router/mocks"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	sourcemocks "github.com/casamatriz/mirror-middleware/internal/sources/mocks"
	"github.com/casamatriz/mirror-middleware/internal/status"
	"github.com/casamatriz/mirror-middleware/internal/sync"
	writermocks "github.com/casamatriz/mirror-middleware/internal/sync/writer/mocks"
	"github.com/casamatriz/mirror-middleware/internal/telemetry"
)

const testPrimary = "pg-replica2"

type engineFixture struct {
	discoverer   *clustermocks.MockDiscoverer
	router       *routermocks.MockWriteAccessor
	inventory    *sourcemocks.MockInventorySource
	appointments *sourcemocks.MockAppointmentSource
	writer       *writermocks.MockMirrorWriter
}

func newFixture(t *testing.T) *engineFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	return &engineFixture{
		discoverer:   clustermocks.NewMockDiscoverer(ctrl),
		router:       routermocks.NewMockWriteAccessor(ctrl),
		inventory:    sourcemocks.NewMockInventorySource(ctrl),
		appointments: sourcemocks.NewMockAppointmentSource(ctrl),
		writer:       writermocks.NewMockMirrorWriter(ctrl),
	}
}

// expectWriteAccess makes the router run the operation with the fixture writer
func (f *engineFixture) expectWriteAccess() {
	f.discoverer.EXPECT().DiscoverPrimary(gomock.Any()).Return(testPrimary)
	f.router.EXPECT().WithWriteAccess(gomock.Any(), testPrimary, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn router.WriteFunc) error {
			return fn(ctx, f.writer)
		})
}

func (f *engineFixture) engine(t *testing.T, opts ...sync.Option) sync.Engine {
	t.Helper()

	e, err := sync.NewEngine(f.discoverer, f.router, f.inventory, f.appointments, opts...)
	require.NoError(t, err)
	return e
}

func listID(v int64) *int64 { return &v }

var (
	testLists = []sources.ShoppingList{{ID: 1, Name: "groceries"}, {ID: 2, Name: "hardware"}}
	testItems = []sources.ShoppingItem{
		{ID: 10, Description: "milk", Completed: true, ListID: listID(1)},
		{ID: 11, Description: "bread", ListID: listID(1)},
		{ID: 12, Description: "nails", ListID: listID(2)},
	}
)

func TestNewEngine(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tests := []struct {
		name    string
		build   func() (sync.Engine, error)
		wantErr string
	}{
		{
			name: "missing discoverer",
			build: func() (sync.Engine, error) {
				return sync.NewEngine(nil, f.router, f.inventory, f.appointments)
			},
			wantErr: "primary discoverer is required",
		},
		{
			name: "missing router",
			build: func() (sync.Engine, error) {
				return sync.NewEngine(f.discoverer, nil, f.inventory, f.appointments)
			},
			wantErr: "write router is required",
		},
		{
			name: "missing inventory",
			build: func() (sync.Engine, error) {
				return sync.NewEngine(f.discoverer, f.router, nil, f.appointments)
			},
			wantErr: "inventory source is required",
		},
		{
			name: "missing appointments",
			build: func() (sync.Engine, error) {
				return sync.NewEngine(f.discoverer, f.router, f.inventory, nil)
			},
			wantErr: "appointment source is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, e)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSyncInventory_Success(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectWriteAccess()
	f.inventory.EXPECT().FetchLists(gomock.Any()).Return(testLists, nil)
	f.inventory.EXPECT().FetchItems(gomock.Any(), nil).Return(testItems, nil)

	// lists go in before items
	gomock.InOrder(
		f.writer.EXPECT().UpsertShoppingList(gomock.Any(), testLists[0]).Return(nil),
		f.writer.EXPECT().UpsertShoppingList(gomock.Any(), testLists[1]).Return(nil),
		f.writer.EXPECT().UpsertShoppingItem(gomock.Any(), testItems[0]).Return(nil),
		f.writer.EXPECT().UpsertShoppingItem(gomock.Any(), testItems[1]).Return(nil),
		f.writer.EXPECT().UpsertShoppingItem(gomock.Any(), testItems[2]).Return(nil),
	)

	result, err := f.engine(t).SyncInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &sync.InventoryResult{Lists: 2, Items: 3}, result)
}

func TestSyncInventory_IgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	live := gomock.Cond(func(ctx context.Context) bool { return ctx.Err() == nil })
	f.discoverer.EXPECT().DiscoverPrimary(live).Return(testPrimary)
	f.router.EXPECT().WithWriteAccess(live, testPrimary, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, fn router.WriteFunc) error {
			return fn(ctx, f.writer)
		})
	f.inventory.EXPECT().FetchLists(live).Return(testLists[:1], nil)
	f.inventory.EXPECT().FetchItems(live, nil).Return(testItems[:1], nil)
	f.writer.EXPECT().UpsertShoppingList(live, testLists[0]).Return(nil)
	f.writer.EXPECT().UpsertShoppingItem(live, testItems[0]).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := f.engine(t).SyncInventory(ctx)
	require.NoError(t, err)
	assert.Equal(t, &sync.InventoryResult{Lists: 1, Items: 1}, result)
}

func TestSyncInventory_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(f *engineFixture)
		wantKind sync.ErrorKind
		wantMsg  string
	}{
		{
			name: "lists unavailable writes nothing",
			setup: func(f *engineFixture) {
				f.expectWriteAccess()
				f.inventory.EXPECT().FetchLists(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantKind: sync.KindForeignRead,
			wantMsg:  "connection refused",
		},
		{
			name: "items unavailable writes nothing",
			setup: func(f *engineFixture) {
				f.expectWriteAccess()
				f.inventory.EXPECT().FetchLists(gomock.Any()).Return(testLists, nil)
				f.inventory.EXPECT().FetchItems(gomock.Any(), nil).Return(nil, errors.New("502 Bad Gateway"))
			},
			wantKind: sync.KindForeignRead,
			wantMsg:  "502 Bad Gateway",
		},
		{
			name: "write failure aborts remaining upserts",
			setup: func(f *engineFixture) {
				f.expectWriteAccess()
				f.inventory.EXPECT().FetchLists(gomock.Any()).Return(testLists, nil)
				f.inventory.EXPECT().FetchItems(gomock.Any(), nil).Return(testItems, nil)
				gomock.InOrder(
					f.writer.EXPECT().UpsertShoppingList(gomock.Any(), testLists[0]).Return(nil),
					f.writer.EXPECT().UpsertShoppingList(gomock.Any(), testLists[1]).Return(errors.New("read-only transaction")),
				)
			},
			wantKind: sync.KindWrite,
			wantMsg:  "read-only transaction",
		},
		{
			name: "primary unreachable",
			setup: func(f *engineFixture) {
				f.discoverer.EXPECT().DiscoverPrimary(gomock.Any()).Return(testPrimary)
				f.router.EXPECT().WithWriteAccess(gomock.Any(), testPrimary, gomock.Any()).
					Return(errors.New("write node pg-replica2 unreachable"))
			},
			wantKind: sync.KindWrite,
			wantMsg:  "unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			tt.setup(f)

			result, err := f.engine(t).SyncInventory(context.Background())
			require.Error(t, err)
			assert.Nil(t, result)

			var syncErr *sync.Error
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, tt.wantKind, syncErr.Kind)
			assert.Equal(t, sync.SourceInventory, syncErr.Source)
			assert.Contains(t, syncErr.Error(), tt.wantMsg)
			assert.NotNil(t, errors.Unwrap(syncErr))
		})
	}
}

func TestSyncAppointments(t *testing.T) {
	t.Parallel()

	desc := "control"
	citas := []sources.Appointment{
		{ID: 1, Patient: "Ana", Description: &desc},
		{ID: 2, Patient: "Luis"},
		{ID: 3, Patient: "Marta"},
		{ID: 4, Patient: "Pedro"},
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.expectWriteAccess()
		f.appointments.EXPECT().FetchAppointments(gomock.Any()).Return(citas, nil)
		f.writer.EXPECT().UpsertAppointment(gomock.Any(), gomock.Any()).Return(nil).Times(len(citas))

		result, err := f.engine(t).SyncAppointments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, result.Appointments)
	})

	t.Run("secondary store down", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.expectWriteAccess()
		f.appointments.EXPECT().FetchAppointments(gomock.Any()).Return(nil, errors.New("failed to read citas: timeout"))

		_, err := f.engine(t).SyncAppointments(context.Background())
		var syncErr *sync.Error
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, sync.KindForeignRead, syncErr.Kind)
		assert.Equal(t, sync.SourceAppointments, syncErr.Source)
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.expectWriteAccess()
		f.appointments.EXPECT().FetchAppointments(gomock.Any()).Return(citas, nil)
		gomock.InOrder(
			f.writer.EXPECT().UpsertAppointment(gomock.Any(), citas[0]).Return(nil),
			f.writer.EXPECT().UpsertAppointment(gomock.Any(), citas[1]).Return(errors.New("deadlock detected")),
		)

		_, err := f.engine(t).SyncAppointments(context.Background())
		var syncErr *sync.Error
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, sync.KindWrite, syncErr.Kind)
	})
}

func TestEngine_TracksRuns(t *testing.T) {
	t.Parallel()

	tracker := status.NewTracker()

	f := newFixture(t)
	f.expectWriteAccess()
	f.inventory.EXPECT().FetchLists(gomock.Any()).Return(testLists, nil)
	f.inventory.EXPECT().FetchItems(gomock.Any(), nil).Return(nil, nil)
	f.writer.EXPECT().UpsertShoppingList(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f.expectWriteAccess()
	f.appointments.EXPECT().FetchAppointments(gomock.Any()).Return(nil, errors.New("no route to host"))

	e := f.engine(t, sync.WithTracker(tracker))
	ctx := context.Background()

	_, err := e.SyncInventory(ctx)
	require.NoError(t, err)
	_, err = e.SyncAppointments(ctx)
	require.Error(t, err)

	inv, ok := tracker.Get(sync.SourceInventory)
	require.True(t, ok)
	assert.Equal(t, status.SyncPhaseComplete, inv.Phase)
	assert.Equal(t, map[string]int{sync.TableLists: 2, sync.TableItems: 0}, inv.Records)
	assert.NotEmpty(t, inv.RunID)

	hosp, ok := tracker.Get(sync.SourceAppointments)
	require.True(t, ok)
	assert.Equal(t, status.SyncPhaseFailed, hosp.Phase)
	assert.Contains(t, hosp.Message, "no route to host")
	assert.Equal(t, 1, hosp.AttemptCount)
}

func TestEngine_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewSyncMetrics(provider)
	require.NoError(t, err)

	f := newFixture(t)
	f.expectWriteAccess()
	f.inventory.EXPECT().FetchLists(gomock.Any()).Return(testLists, nil)
	f.inventory.EXPECT().FetchItems(gomock.Any(), nil).Return(testItems, nil)
	f.writer.EXPECT().UpsertShoppingList(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.writer.EXPECT().UpsertShoppingItem(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	_, err = f.engine(t, sync.WithMetrics(metrics)).SyncInventory(context.Background())
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			names[m.Name] = true
		}
	}
	assert.True(t, names["mirror_sync_duration_seconds"])
	assert.True(t, names["mirror_sync_records"])
}
