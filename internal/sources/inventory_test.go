package sources_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casamatriz/mirror-middleware/internal/httpclient"
	httpmocks "github.com/casamatriz/mirror-middleware/internal/httpclient/mocks"
	"github.com/casamatriz/mirror-middleware/internal/sources"
)

func newInventoryServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/lists":
			_, _ = w.Write([]byte(`[{"id":1,"name":"groceries"},{"id":2,"name":"hardware"}]`))
		case "/items":
			if r.URL.Query().Get("list_id") == "2" {
				_, _ = w.Write([]byte(`[{"id":12,"description":"nails","completed":0,"list_id":2}]`))
				return
			}
			_, _ = w.Write([]byte(`[
				{"id":10,"description":"milk","completed":1,"list_id":1},
				{"id":11,"description":"bread","completed":false,"list_id":1},
				{"id":12,"description":"nails","completed":0,"list_id":2}
			]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewHTTPInventorySource(t *testing.T) {
	t.Parallel()

	_, err := sources.NewHTTPInventorySource(nil, "http://app1-backend:3000")
	require.Error(t, err)

	_, err = sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), "not a url")
	require.Error(t, err)

	s, err := sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), "http://app1-backend:3000/")
	require.NoError(t, err)
	assert.Equal(t, "http://app1-backend:3000/lists", s.ListsURL())
}

func TestHTTPInventorySource_Fetch(t *testing.T) {
	t.Parallel()

	srv := newInventoryServer(t)
	s, err := sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	lists, err := s.FetchLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []sources.ShoppingList{{ID: 1, Name: "groceries"}, {ID: 2, Name: "hardware"}}, lists)

	items, err := s.FetchItems(ctx, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, items[0].Completed)
	assert.False(t, items[1].Completed)
	require.NotNil(t, items[2].ListID)
	assert.Equal(t, int64(2), *items[2].ListID)

	listID := int64(2)
	filtered, err := s.FetchItems(ctx, &listID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "nails", filtered[0].Description)
}

func TestHTTPInventorySource_Raw(t *testing.T) {
	t.Parallel()

	srv := newInventoryServer(t)
	s, err := sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	raw, err := s.RawLists(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"groceries"},{"id":2,"name":"hardware"}]`, string(raw))

	raw, err = s.RawItems(ctx, "2")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":12,"description":"nails","completed":0,"list_id":2}]`, string(raw))
}

func TestHTTPInventorySource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		setupMock     func(m *httpmocks.MockClientMockRecorder)
		call          func(s *sources.HTTPInventorySource) error
		errorContains string
	}{
		{
			name: "lists unavailable",
			setupMock: func(m *httpmocks.MockClientMockRecorder) {
				m.Get(gomock.Any(), "http://inventory/lists").Return(nil, httpclient.NewHTTPError(503, "http://inventory/lists", "503 Service Unavailable"))
			},
			call: func(s *sources.HTTPInventorySource) error {
				_, err := s.FetchLists(context.Background())
				return err
			},
			errorContains: "failed to fetch inventory lists",
		},
		{
			name: "lists malformed",
			setupMock: func(m *httpmocks.MockClientMockRecorder) {
				m.Get(gomock.Any(), "http://inventory/lists").Return([]byte(`{"oops":`), nil)
			},
			call: func(s *sources.HTTPInventorySource) error {
				_, err := s.FetchLists(context.Background())
				return err
			},
			errorContains: "failed to decode inventory lists",
		},
		{
			name: "items connection refused",
			setupMock: func(m *httpmocks.MockClientMockRecorder) {
				m.Get(gomock.Any(), "http://inventory/items").Return(nil, errors.New("connection refused"))
			},
			call: func(s *sources.HTTPInventorySource) error {
				_, err := s.FetchItems(context.Background(), nil)
				return err
			},
			errorContains: "failed to fetch inventory items",
		},
		{
			name: "items list_id is escaped",
			setupMock: func(m *httpmocks.MockClientMockRecorder) {
				m.Get(gomock.Any(), "http://inventory/items?list_id=1%262").Return([]byte(`[]`), nil)
			},
			call: func(s *sources.HTTPInventorySource) error {
				_, err := s.RawItems(context.Background(), "1&2")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := httpmocks.NewMockClient(ctrl)
			tt.setupMock(client.EXPECT())

			s, err := sources.NewHTTPInventorySource(client, "http://inventory")
			require.NoError(t, err)

			err = tt.call(s)
			if tt.errorContains == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
