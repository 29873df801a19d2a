package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/adapters/reporting"
	"github.com/lcalzada-xor/netwatch/internal/adapters/web/handlers"
	"github.com/lcalzada-xor/netwatch/internal/adapters/web/websocket"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server handles HTTP and WebSocket connections.
type Server struct {
	Addr      string
	Service   ports.Monitor
	WSManager *websocket.WSManager

	StatusHandler *handlers.StatusHandler
	ExportHandler *handlers.ExportHandler
	ReportHandler *handlers.ReportHandler
	srv           *http.Server
}

// NewServer creates a new web server.
func NewServer(addr string, service ports.Monitor) *Server {
	return &Server{
		Addr:      addr,
		Service:   service,
		WSManager: websocket.NewWSManager(),

		StatusHandler: handlers.NewStatusHandler(service),
		ExportHandler: handlers.NewExportHandler(service),
		ReportHandler: handlers.NewReportHandler(service, reporting.NewPDFExporter()),
	}
}

// Run starts the server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	handler := SetupRoutes(s)

	// Instrument with OpenTelemetry
	instrumentedHandler := otelhttp.NewHandler(handler, "netwatch-server")

	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           instrumentedHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful Shutdown implementation
	go func() {
		<-ctx.Done()
		log.Println("Web Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Web Server shutdown error: %v", err)
		}
	}()

	log.Printf("Web server listening on %s", s.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
