// internal/app/features/dashboard/api.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ServeStatsJSON handles GET /dashboard/api/stats.
//
// On success: 200 and
//
//	{ "state":"loaded", "data":{ "totalMembers":1250, ... } }
//
// On failure: 502 and
//
//	{ "state":"failed", "error":"load dashboard statistics: ..." }
func (h *Handler) ServeStatsJSON(w http.ResponseWriter, r *http.Request) {
	st := h.loadStats(r.Context())
	status := http.StatusOK
	if st.IsFailed() {
		status = http.StatusBadGateway
	}
	h.writeJSON(w, status, st)
}

// ServeActivityJSON handles GET /dashboard/api/activity with the same
// envelope; data is the normalized entry list, newest first.
func (h *Handler) ServeActivityJSON(w http.ResponseWriter, r *http.Request) {
	st := h.loadActivity(r.Context())
	status := http.StatusOK
	if st.IsFailed() {
		status = http.StatusBadGateway
	}
	h.writeJSON(w, status, st)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("dashboard json encode failed", zap.Error(err))
	}
}
