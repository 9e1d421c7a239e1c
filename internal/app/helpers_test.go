package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casamatriz/mirror-middleware/internal/httpclient"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	sourcemocks "github.com/casamatriz/mirror-middleware/internal/sources/mocks"
)

func newInventoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/lists":
			_, _ = w.Write([]byte(`[{"id":1,"name":"groceries"}]`))
		case "/items":
			_, _ = w.Write([]byte(`[{"id":10,"description":"milk","completed":0,"list_id":1},{"id":11,"description":"bread","completed":1,"list_id":1}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func stubSources(t *testing.T) (sources.InventorySource, sources.AppointmentSource) {
	t.Helper()
	inventory, err := sources.NewHTTPInventorySource(httpclient.NewDefaultClient(0), "http://inventory.invalid")
	require.NoError(t, err)
	return inventory, sourcemocks.NewMockAppointmentSource(gomock.NewController(t))
}
