package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/config"
	"transportcatalogue.dev/internal/gtfs"
	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/renderer"
	"transportcatalogue.dev/internal/requests"
	"transportcatalogue.dev/internal/router"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. Everything except Config and Logger is built once at
// startup and never modified, so handlers share it without locking.
type Application struct {
	Config    config.Config
	Logger    *slog.Logger
	Catalogue *catalogue.Finalized
	Router    *router.Router
	Renderer  *renderer.MapRenderer
}

// New loads the catalogue named by cfg.Data and prepares the router and the
// map renderer. A request document takes precedence over a GTFS feed, and
// its embedded settings take precedence over the ones in cfg.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Application, error) {
	app := &Application{Config: cfg, Logger: logger}

	var err error
	switch {
	case cfg.Data.Document != "":
		err = app.loadDocument(cfg.Data.Document)
	case cfg.Data.GTFS != "":
		app.Catalogue, err = gtfs.LoadCatalogue(ctx, logger, gtfs.Config{Source: cfg.Data.GTFS})
	default:
		err = ErrNoDataSource
	}
	if err != nil {
		return nil, err
	}

	if app.Renderer, err = renderer.New(app.Config.Render); err != nil {
		return nil, fmt.Errorf("configure renderer: %w", err)
	}
	if app.Router, err = requests.BuildRouter(logger, app.Catalogue, app.Config.Routing); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *Application) loadDocument(path string) error {
	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open request document: %w", err)
	}
	defer logging.SafeCloseWithLogging(f, app.Logger, "request document")

	doc, err := requests.Decode(f)
	if err != nil {
		return err
	}
	if app.Catalogue, err = requests.BuildCatalogue(app.Logger, doc.BaseRequests); err != nil {
		return err
	}
	if doc.RenderSettings != nil {
		app.Config.Render = *doc.RenderSettings
	}
	if doc.RoutingSettings != nil {
		app.Config.Routing = *doc.RoutingSettings
	}

	logging.LogOperation(app.Logger, "request_document_loaded",
		slog.String("path", path),
		slog.Duration("duration", time.Since(start)))
	return nil
}
