package v1

import pkgsync "github.com/casamatriz/mirror-middleware/internal/sync"

// Status labels returned by the sync endpoints
const (
	StatusInventorySynced    = "App1 sincronizado"
	StatusAppointmentsSynced = "Hospital sincronizado"
)

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status string `json:"status"`
}

// VersionResponse represents the version information response
type VersionResponse struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// InventorySyncResponse is returned by POST /api/sync/app1
type InventorySyncResponse struct {
	Status string `json:"status"`
	pkgsync.InventoryResult
}

// AppointmentsSyncResponse is returned by POST /api/sync/hospital
type AppointmentsSyncResponse struct {
	Status string `json:"status"`
	pkgsync.AppointmentsResult
}
