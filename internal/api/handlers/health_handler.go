package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/nursematch/internal/adapters/nursestore"
)

// StoreHealthReporter reports the candidate store's status projection.
type StoreHealthReporter interface {
	Health(ctx context.Context) nursestore.Health
}

// HealthHandler handles liveness probes with the candidate store status
type HealthHandler struct {
	store      StoreHealthReporter
	modelReady bool
}

// NewHealthHandler creates a new health handler. modelReady reflects
// whether a live model endpoint was configured at startup.
func NewHealthHandler(store StoreHealthReporter, modelReady bool) *HealthHandler {
	return &HealthHandler{
		store:      store,
		modelReady: modelReady,
	}
}

// Health handles GET /health. The process is alive as long as this
// responds; store connectivity is reported but never fails the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"modelReady": h.modelReady,
		"nurseStore": h.store.Health(r.Context()),
	})
}
