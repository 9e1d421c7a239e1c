// Package service provides the business logic behind the mirror middleware API
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/casamatriz/mirror-middleware/internal/health"
	"github.com/casamatriz/mirror-middleware/internal/sources"
	"github.com/casamatriz/mirror-middleware/internal/status"
	pkgsync "github.com/casamatriz/mirror-middleware/internal/sync"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go MirrorService

// MirrorService defines the operations exposed over HTTP
type MirrorService interface {
	// CheckReadiness checks that the read pool answers
	CheckReadiness(ctx context.Context) error

	// Health reports the middleware status and the current primary label
	Health(ctx context.Context) *HealthInfo

	// SystemStatus checks the three backends concurrently
	SystemStatus(ctx context.Context) *SystemStatus

	// ExternalLists returns the inventory lists as served by the inventory service
	ExternalLists(ctx context.Context) (json.RawMessage, error)

	// ExternalItems returns the inventory items, filtered by listID when non-empty
	ExternalItems(ctx context.Context, listID string) (json.RawMessage, error)

	// ExternalCitas returns the citas of the secondary store, newest first
	ExternalCitas(ctx context.Context) ([]sources.Appointment, error)

	// SyncInventory mirrors the inventory into the local tables
	SyncInventory(ctx context.Context) (*pkgsync.InventoryResult, error)

	// SyncAppointments mirrors the citas into the local tables
	SyncAppointments(ctx context.Context) (*pkgsync.AppointmentsResult, error)

	// LocalLists returns the mirrored lists ordered by id
	LocalLists(ctx context.Context) ([]MirrorList, error)

	// LocalItems returns the mirrored items ordered by id
	LocalItems(ctx context.Context) ([]MirrorItem, error)

	// LocalCitas returns the mirrored citas, newest id first
	LocalCitas(ctx context.Context) ([]MirrorCita, error)

	// SyncStatus returns the last run of each source
	SyncStatus(ctx context.Context) map[string]status.SyncStatus
}

// HealthInfo is the middleware health summary
type HealthInfo struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	MasterActual string `json:"master_actual"`
}

// SystemStatus is the per-backend status, keyed the way the dashboard expects
type SystemStatus struct {
	Middleware health.Status `json:"middleware"`
	App1       health.Status `json:"app1"`
	Hospital   health.Status `json:"hospital"`
}

// SystemStatusFromReport maps a health report; missing subsystems are down
func SystemStatusFromReport(r health.Report) *SystemStatus {
	get := func(s health.Subsystem) health.Status {
		if st, ok := r[s]; ok {
			return st
		}
		return health.StatusDown
	}
	return &SystemStatus{
		Middleware: get(health.SubsystemLocal),
		App1:       get(health.SubsystemInventory),
		Hospital:   get(health.SubsystemSecondary),
	}
}

// MirrorList is a mirrored inventory list
type MirrorList struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	SyncedAt time.Time `json:"synced_at"`
}

// MirrorItem is a mirrored inventory item
type MirrorItem struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	ListID      *int64    `json:"list_id"`
	SyncedAt    time.Time `json:"synced_at"`
}

// MirrorCita is a mirrored cita
type MirrorCita struct {
	ID          int64      `json:"id"`
	Paciente    string     `json:"paciente"`
	Descripcion *string    `json:"descripcion"`
	Fecha       *time.Time `json:"fecha"`
	SyncedAt    time.Time  `json:"synced_at"`
}
