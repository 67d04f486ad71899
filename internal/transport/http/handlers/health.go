package http_handlers

import (
	"database/sql"
	"net/http"

	"github.com/avolkov/hrdesk/internal/transport/http/response"
)

// HealthHandler serves the probe endpoints. A nil db means the service runs
// on the in-memory stores, which have nothing to become unready.
type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz reports process liveness only; it never touches storage.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports whether the service can take traffic, which for the
// postgres configuration means the database answers a ping.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		response.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ready",
			"storage": "memory",
		})
		return
	}

	if err := h.db.PingContext(r.Context()); err != nil {
		response.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  "database unreachable",
		})
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"storage": "postgres",
	})
}
