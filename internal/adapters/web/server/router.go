package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(s *Server) http.Handler {
	mux := http.NewServeMux()

	// Read surface
	mux.HandleFunc("GET /api/status", s.StatusHandler.HandleStatus)
	mux.HandleFunc("GET /api/samples", s.StatusHandler.HandleSamples)
	mux.HandleFunc("GET /api/summary", s.StatusHandler.HandleSummary)

	// Bulk export and reporting
	mux.HandleFunc("GET /api/export", s.ExportHandler.HandleExport)
	mux.HandleFunc("GET /api/report", s.ReportHandler.HandleReport)

	// Live sample feed
	mux.HandleFunc("/ws", s.WSManager.HandleWebSocket)

	// Metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Liveness
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return mux
}
