package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/adapters/reporting"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
)

// ReportHandler generates downloadable PDF health reports.
type ReportHandler struct {
	Service     ports.Monitor
	PDFExporter *reporting.PDFExporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service ports.Monitor, exporter *reporting.PDFExporter) *ReportHandler {
	return &ReportHandler{
		Service:     service,
		PDFExporter: exporter,
	}
}

// HandleReport renders the current summary and recent samples as a PDF.
func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary := h.Service.ComputeSummary()
	samples := h.Service.WindowSamples()
	session := h.Service.Session()

	data, err := h.PDFExporter.ExportHealthReport(summary, session, samples)
	if err != nil {
		log.Printf("Report generation failed: %v", err)
		http.Error(w, "Report generation failed", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("netwatch-report-%s.pdf", time.Now().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(data)
}
