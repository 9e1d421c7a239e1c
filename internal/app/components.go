package app

import (
	"github.com/casamatriz/mirror-middleware/internal/cluster"
	"github.com/casamatriz/mirror-middleware/internal/service"
	"github.com/casamatriz/mirror-middleware/internal/status"
	"github.com/casamatriz/mirror-middleware/internal/sync/coordinator"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// SyncCoordinator runs background sync rounds. It is nil when no interval is configured.
	SyncCoordinator coordinator.Coordinator

	// MirrorService provides the HTTP-facing business logic
	MirrorService service.MirrorService

	// Discoverer locates the writable primary
	Discoverer cluster.Discoverer

	// Tracker holds the last sync run of each source
	Tracker *status.Tracker
}
