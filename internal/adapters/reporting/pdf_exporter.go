package reporting

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/lcalzada-xor/netwatch/internal/core/domain"
)

// PDFExporter exports connectivity health reports to PDF format
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter instance
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ExportHealthReport generates a PDF from a summary and the recent samples
// backing it.
func (e *PDFExporter) ExportHealthReport(summary domain.Summary, session domain.SessionInfo, samples []domain.Sample) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	e.addHeader(pdf, summary, session)
	e.addMetrics(pdf, summary)
	e.addSampleTable(pdf, samples)
	e.addFooter(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// addHeader adds the report header
func (e *PDFExporter) addHeader(pdf *gofpdf.Fpdf, summary domain.Summary, session domain.SessionInfo) {
	pdf.SetFont("Arial", "B", 24)
	pdf.SetTextColor(0, 51, 102) // Dark blue
	pdf.CellFormat(0, 15, "Connectivity Health Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(120, 120, 120)
	dateStr := fmt.Sprintf("Generated: %s", summary.GeneratedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(0, 6, dateStr, "", 1, "L", false, 0, "")

	sessionStr := fmt.Sprintf("Monitoring since: %s", session.StartedAt.Format("2006-01-02 15:04"))
	pdf.CellFormat(0, 6, sessionStr, "", 1, "L", false, 0, "")
	if session.LastRunAt != nil {
		lastStr := fmt.Sprintf("Previous run ended: %s", session.LastRunAt.Format("2006-01-02 15:04"))
		pdf.CellFormat(0, 6, lastStr, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

// addMetrics adds the summary metrics block
func (e *PDFExporter) addMetrics(pdf *gofpdf.Fpdf, summary domain.Summary) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Summary", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(40, 40, 40)

	rows := [][2]string{
		{"Samples", fmt.Sprintf("%d", summary.SampleCount)},
		{"Uptime", formatPct(summary.UptimePercent)},
		{"Longest outage", formatOutage(summary)},
		{"Average signal", formatUnit(summary.AverageSignal, "dBm")},
		{"Average ping", formatUnit(summary.AveragePingMs, "ms")},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

// addSampleTable adds a table of the most recent samples
func (e *PDFExporter) addSampleTable(pdf *gofpdf.Fpdf, samples []domain.Sample) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 10, "Recent Samples", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	// Table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 236, 245)
	pdf.SetTextColor(40, 40, 40)
	widths := []float64{38, 28, 40, 30, 26, 26}
	headers := []string{"Time", "Link", "SSID", "Reachability", "Signal", "RTT"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Keep the table to one page worth of rows
	const maxRows = 30
	start := 0
	if len(samples) > maxRows {
		start = len(samples) - maxRows
	}

	pdf.SetFont("Arial", "", 9)
	for _, s := range samples[start:] {
		ssid := "-"
		if s.SSID != nil {
			ssid = *s.SSID
		}
		signal := "-"
		if s.Signal != nil {
			signal = fmt.Sprintf("%d dBm", *s.Signal)
		}
		rtt := "-"
		if s.RTTMs != nil {
			rtt = fmt.Sprintf("%.1f ms", *s.RTTMs)
		}

		cols := []string{
			s.Timestamp.Format("01-02 15:04:05"),
			string(s.LinkState),
			ssid,
			string(s.Reachability),
			signal,
			rtt,
		}
		for i, c := range cols {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// addFooter adds the report footer
func (e *PDFExporter) addFooter(pdf *gofpdf.Fpdf) {
	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 6, "netwatch - local connectivity monitor", "", 1, "C", false, 0, "")
}

func formatPct(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func formatUnit(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

func formatOutage(summary domain.Summary) string {
	if summary.LongestOutageSeconds == nil {
		return "n/a"
	}
	return fmt.Sprintf("%d samples (%.0f s)", summary.LongestOutageSamples, *summary.LongestOutageSeconds)
}
