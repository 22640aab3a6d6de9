package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportcatalogue.dev/internal/app"
	"transportcatalogue.dev/internal/config"
	"transportcatalogue.dev/internal/logging"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPort, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, []string{"test"}, cfg.Server.APIKeys)
	assert.Equal(t, config.Default().Routing, cfg.Routing)
}

func TestParseFlagsOverridesConfigFile(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-config", fixture("config.yaml"),
		"-port", "8080",
		"-api-keys", " a, b ,,c",
		"-gtfs", "https://example.com/gtfs.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Env, "unset flags keep the file value")
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Server.APIKeys)
	assert.Equal(t, "https://example.com/gtfs.zip", cfg.Data.GTFS)
	assert.Empty(t, cfg.Data.Document)
	assert.Equal(t, 2.0, cfg.Routing.BusWaitTime)
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"invalid env", []string{"-env", "moon"}},
		{"port out of range", []string{"-port", "70000"}},
		{"missing config file", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestSplitKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitKeys("a, b"))
	assert.Nil(t, splitKeys(" , "))
}

func newTestApplication(t *testing.T, env string) *app.Application {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Env = env
	cfg.Server.APIKeys = []string{"TEST"}
	cfg.Data.Document = fixture("base.json")

	application, err := app.New(context.Background(), cfg, logging.NewStructuredLogger(io.Discard, slog.LevelInfo))
	require.NoError(t, err)
	return application
}

func TestRoutesMountsDebugPagesInDevelopment(t *testing.T) {
	tests := []struct {
		env         string
		debugStatus int
	}{
		{"development", http.StatusOK},
		{"production", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			handler := routes(newTestApplication(t, tt.env))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/?dataType=stops", nil))
			assert.Equal(t, tt.debugStatus, rec.Code)

			rec = httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/buses.json?key=TEST", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, srv, logging.NewStructuredLogger(io.Discard, slog.LevelInfo), "test")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
