// Package v1 provides the REST handlers of the mirror middleware
package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casamatriz/mirror-middleware/internal/api/common"
	"github.com/casamatriz/mirror-middleware/internal/httpclient"
	"github.com/casamatriz/mirror-middleware/internal/service"
)

// Error messages returned to clients
const (
	errInventoryLists   = "Error en App1 Lists"
	errInventoryItems   = "Error en App1 Items"
	errSecondary        = "Error conectando al Hospital (Postgres)"
	errSyncInventory    = "Error sincronizando App1: "
	errSyncAppointments = "Error sincronizando Hospital: "
)

// Routes holds the handlers mounted under /api
type Routes struct {
	service service.MirrorService
}

// NewRoutes creates a new Routes instance with the provided service
func NewRoutes(svc service.MirrorService) *Routes {
	return &Routes{service: svc}
}

// Router creates the /api router
func Router(svc service.MirrorService) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()

	r.Get("/system-status", routes.systemStatus)

	r.Route("/externo", func(r chi.Router) {
		r.Get("/app1/lists", routes.externalLists)
		r.Get("/app1/items", routes.externalItems)
		r.Get("/hospital/citas", routes.externalCitas)
	})

	r.Route("/sync", func(r chi.Router) {
		r.Post("/app1", routes.syncInventory)
		r.Post("/hospital", routes.syncAppointments)
		r.Get("/status", routes.syncStatus)
	})

	r.Route("/local", func(r chi.Router) {
		r.Get("/lists", routes.localLists)
		r.Get("/items", routes.localItems)
		r.Get("/citas", routes.localCitas)
	})

	return r
}

func (rr *Routes) systemStatus(w http.ResponseWriter, r *http.Request) {
	common.WriteJSONResponse(w, rr.service.SystemStatus(r.Context()), http.StatusOK)
}

// upstreamMessage keeps the fixed message for non-2xx answers and surfaces
// transport failures as they are.
func upstreamMessage(err error, fixed string) string {
	if httpclient.StatusCode(err) != 0 {
		return fixed
	}
	return err.Error()
}

func (rr *Routes) externalLists(w http.ResponseWriter, r *http.Request) {
	body, err := rr.service.ExternalLists(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Inventory lists request failed", "error", err)
		common.WriteErrorResponse(w, upstreamMessage(err, errInventoryLists), http.StatusInternalServerError)
		return
	}
	common.WriteRawJSON(w, body)
}

func (rr *Routes) externalItems(w http.ResponseWriter, r *http.Request) {
	body, err := rr.service.ExternalItems(r.Context(), r.URL.Query().Get("list_id"))
	if err != nil {
		slog.ErrorContext(r.Context(), "Inventory items request failed", "error", err)
		common.WriteErrorResponse(w, upstreamMessage(err, errInventoryItems), http.StatusInternalServerError)
		return
	}
	common.WriteRawJSON(w, body)
}

func (rr *Routes) externalCitas(w http.ResponseWriter, r *http.Request) {
	citas, err := rr.service.ExternalCitas(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Secondary store query failed", "error", err)
		common.WriteErrorResponse(w, errSecondary, http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, citas, http.StatusOK)
}

func (rr *Routes) syncInventory(w http.ResponseWriter, r *http.Request) {
	result, err := rr.service.SyncInventory(r.Context())
	if err != nil {
		common.WriteErrorResponse(w, errSyncInventory+err.Error(), http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, InventorySyncResponse{
		Status:          StatusInventorySynced,
		InventoryResult: *result,
	}, http.StatusOK)
}

func (rr *Routes) syncAppointments(w http.ResponseWriter, r *http.Request) {
	result, err := rr.service.SyncAppointments(r.Context())
	if err != nil {
		common.WriteErrorResponse(w, errSyncAppointments+err.Error(), http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, AppointmentsSyncResponse{
		Status:             StatusAppointmentsSynced,
		AppointmentsResult: *result,
	}, http.StatusOK)
}

func (rr *Routes) syncStatus(w http.ResponseWriter, r *http.Request) {
	common.WriteJSONResponse(w, rr.service.SyncStatus(r.Context()), http.StatusOK)
}

func (rr *Routes) localLists(w http.ResponseWriter, r *http.Request) {
	lists, err := rr.service.LocalLists(r.Context())
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, lists, http.StatusOK)
}

func (rr *Routes) localItems(w http.ResponseWriter, r *http.Request) {
	items, err := rr.service.LocalItems(r.Context())
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, items, http.StatusOK)
}

func (rr *Routes) localCitas(w http.ResponseWriter, r *http.Request) {
	citas, err := rr.service.LocalCitas(r.Context())
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	common.WriteJSONResponse(w, citas, http.StatusOK)
}
