package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"transportcatalogue.dev/internal/app"
	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/restapi"
	"transportcatalogue.dev/internal/webui"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, *cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to load transport catalogue", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes(application),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := serve(ctx, srv, logger, cfg.Server.Env); err != nil {
		logging.LogError(logger, "server stopped", err)
		os.Exit(1)
	}
}

// routes mounts the REST API, plus the debug pages outside production.
func routes(application *app.Application) http.Handler {
	api := restapi.NewRestAPI(application)
	if application.Config.Server.Env != "development" {
		return api.Handler()
	}

	debug := httprouter.New()
	(&webui.WebUI{Application: application}).SetWebUIRoutes(debug)

	mux := http.NewServeMux()
	mux.Handle("/debug/", debug)
	mux.Handle("/", api.Handler())
	return mux
}

// serve runs srv until ctx is cancelled, then drains open connections.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger, env string) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
