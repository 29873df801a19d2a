package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"github.com/lcalzada-xor/netwatch/internal/core/services/monitor"
)

// ExportHandler serves bulk downloads of the durable sample log.
type ExportHandler struct {
	Service ports.Monitor
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(service ports.Monitor) *ExportHandler {
	return &ExportHandler{
		Service: service,
	}
}

// HandleExport streams the full durable log as JSON or CSV.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	samples, err := h.Service.ExportAllSamples()
	if err != nil {
		if errors.Is(err, monitor.ErrNoDurableLog) {
			http.Error(w, "Durable log unavailable, running window-only", http.StatusServiceUnavailable)
			return
		}
		log.Printf("Export failed: %v", err)
		http.Error(w, "Export failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("netwatch-samples-%s.%s", uuid.New().String()[:8], format)

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		json.NewEncoder(w).Encode(samples)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		writeCSV(w, samples)
	default:
		http.Error(w, "Unsupported format: "+format, http.StatusBadRequest)
	}
}

func writeCSV(w http.ResponseWriter, samples []domain.Sample) {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	cw.Write([]string{"timestamp", "link_state", "ssid", "signal_dbm", "reachability", "rtt_ms"})
	for _, s := range samples {
		ssid, signal, rtt := "", "", ""
		if s.SSID != nil {
			ssid = *s.SSID
		}
		if s.Signal != nil {
			signal = strconv.Itoa(*s.Signal)
		}
		if s.RTTMs != nil {
			rtt = strconv.FormatFloat(*s.RTTMs, 'f', 3, 64)
		}
		cw.Write([]string{
			s.Timestamp.Format(time.RFC3339),
			string(s.LinkState),
			ssid,
			signal,
			string(s.Reachability),
			rtt,
		})
	}
}
