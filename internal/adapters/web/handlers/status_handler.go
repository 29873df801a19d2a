package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lcalzada-xor/netwatch/internal/core/ports"
)

// StatusHandler serves the latest sample, the window and the summary.
type StatusHandler struct {
	Service ports.Monitor
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(service ports.Monitor) *StatusHandler {
	return &StatusHandler{
		Service: service,
	}
}

// HandleStatus returns the most recent sample plus session info.
func (h *StatusHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := map[string]interface{}{
		"latest":  h.Service.LatestSample(),
		"session": h.Service.Session(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// HandleSamples returns the in-memory window, oldest-first.
func (h *StatusHandler) HandleSamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	samples := h.Service.WindowSamples()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"count":   len(samples),
		"samples": samples,
	})
}

// HandleSummary returns the aggregated health metrics.
func (h *StatusHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ComputeSummary())
}
