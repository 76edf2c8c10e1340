package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/strataadmin/internal/app/store/platformapi"
	"github.com/dalemusser/strataadmin/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	API platformapi.Getter
	Log *zap.Logger
}

// NewHandler constructs a health Handler with the platform API client and logger.
func NewHandler(api platformapi.Getter, logger *zap.Logger) *Handler {
	return &Handler{
		API: api,
		Log: logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status    string `json:"status"`
	API       string `json:"api"`
	LatencyMS int64  `json:"latency_ms"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "api":"reachable", "latency_ms":12 }
//
// When the platform API cannot be read: 503 and
//
//	{ "status":"error", "api":"unreachable", "message":"Platform API unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		API:    "reachable",
	}

	start := time.Now()
	var probe json.RawMessage
	err := h.API.GetJSON(ctx, platformapi.PathMemberStats, &probe)
	resp.LatencyMS = time.Since(start).Milliseconds()

	if err != nil {
		h.Log.Error("health-check: platform API probe failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.API = "unreachable"
		resp.Message = "Platform API unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
