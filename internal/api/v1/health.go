package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casamatriz/mirror-middleware/internal/api/common"
	"github.com/casamatriz/mirror-middleware/internal/service"
	"github.com/casamatriz/mirror-middleware/internal/versions"
)

// HealthRouter creates a router for the root level probes
func HealthRouter(svc service.MirrorService) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", healthHandler(svc))
	r.Get("/readiness", readinessHandler(svc))
	r.Get("/version", versionHandler)

	return r
}

// healthHandler reports the middleware status and the current primary.
// It always answers 200, "unknown" stands in for an undiscoverable primary.
func healthHandler(svc service.MirrorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSONResponse(w, svc.Health(r.Context()), http.StatusOK)
	}
}

func readinessHandler(svc service.MirrorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckReadiness(r.Context()); err != nil {
			common.WriteErrorResponse(w, "MirrorService not ready: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		common.WriteJSONResponse(w, ReadinessResponse{Status: "ready"}, http.StatusOK)
	}
}

func versionHandler(w http.ResponseWriter, _ *http.Request) {
	info := versions.GetVersionInfo()
	common.WriteJSONResponse(w, VersionResponse{
		Version:   info.Version,
		Commit:    info.Commit,
		BuildDate: info.BuildDate,
		GoVersion: info.GoVersion,
		Platform:  info.Platform,
	}, http.StatusOK)
}
