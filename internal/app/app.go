package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lcalzada-xor/netwatch/internal/adapters/probe"
	"github.com/lcalzada-xor/netwatch/internal/adapters/storage"
	webserver "github.com/lcalzada-xor/netwatch/internal/adapters/web/server"
	"github.com/lcalzada-xor/netwatch/internal/config"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"github.com/lcalzada-xor/netwatch/internal/core/services/monitor"
	"github.com/lcalzada-xor/netwatch/internal/core/services/session"
	"github.com/lcalzada-xor/netwatch/internal/telemetry"
)

// Application holds the core components of the application.
// It acts as the Facade for the entire system, orchestrating services and infrastructure.
type Application struct {
	Config    *config.Config
	Store     *monitor.Store
	Sampler   *monitor.Sampler
	Monitor   *monitor.Service
	Session   *session.Tracker
	WebServer *webserver.Server
}

// New creates a new Application instance and bootstraps its components.
func New(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config: cfg,
	}

	if err := app.bootstrap(); err != nil {
		return nil, fmt.Errorf("application bootstrap failed: %w", err)
	}

	return app, nil
}

// bootstrap orchestrates the initialization sequence.
func (app *Application) bootstrap() error {
	// 1. Foundation & Infrastructure
	telemetry.InitMetrics()

	app.Session = session.NewTracker(app.Config.SessionPath)

	sampleLog := app.initStorage()
	app.Store = monitor.NewStore(app.Config.WindowSize, sampleLog)
	app.Store.Replay()

	// 2. Probe
	var p ports.Probe
	if app.Config.MockMode {
		log.Println("Mock Mode Active: using simulated probe")
		p = probe.NewMockProbe(time.Now().UnixNano())
	} else {
		p = probe.NewIWProbe(app.Config.Interface)
	}

	// 3. Core services
	app.Sampler = monitor.NewSampler(p, app.Store, app.Config.RefHost, app.Config.Interval)
	app.Monitor = monitor.NewService(app.Store, app.Session, app.Sampler.Interval())

	// 4. Serving layer
	app.WebServer = webserver.NewServer(app.Config.Addr, app.Monitor)
	app.Sampler.SetBroadcaster(app.WebServer.WSManager)

	return nil
}

// initStorage opens the durable sample log. A failure here degrades to
// window-only monitoring instead of aborting: sampling must keep running
// even without persistence.
func (app *Application) initStorage() ports.SampleLog {
	if err := os.MkdirAll(filepath.Dir(app.Config.DBPath), 0755); err != nil {
		log.Printf("Warning: could not create DB directory, running window-only: %v", err)
		return nil
	}

	sampleLog, err := storage.NewSQLiteAdapter(app.Config.DBPath)
	if err != nil {
		log.Printf("Warning: could not open durable log, running window-only: %v", err)
		return nil
	}
	return sampleLog
}

// Run starts the application components and manages their execution lifecycle.
func (app *Application) Run(ctx context.Context) error {
	slog.Info("Starting netwatch components...")

	// 1. Sampling loop
	go app.Sampler.Run(ctx)

	// 2. Web server
	errChan := make(chan error, 1)
	go func() {
		if err := app.WebServer.Run(ctx); err != nil {
			errChan <- fmt.Errorf("web server error: %w", err)
		}
	}()

	slog.Info("netwatch ready", "addr", app.Config.Addr, "interval", app.Config.Interval.String())

	select {
	case <-ctx.Done():
		slog.Info("Termination signal received")
	case err := <-errChan:
		app.cleanup()
		return err
	}

	return app.cleanup()
}

func (app *Application) cleanup() error {
	slog.Info("Cleaning up resources...")

	// Shutdown timestamp first so it survives even if the DB close hangs.
	app.Session.Flush()

	if err := app.Store.Close(); err != nil {
		log.Printf("Warning: failed to close durable log: %v", err)
	}

	return nil
}
