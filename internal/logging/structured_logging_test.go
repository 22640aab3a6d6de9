package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})

	t.Run("component logger tags records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := ForComponent(NewStructuredLogger(&buf, slog.LevelInfo), "router")

		logger.Info("graph ready")
		assert.Contains(t, buf.String(), `"component":"router"`)
		assert.NotNil(t, ForComponent(nil, "x"))
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to build routing graph", assert.AnError,
			slog.String("bus", "297"),
			slog.String("component", "router"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to build routing graph"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"bus":"297"`)
	})

	t.Run("LogError tolerates a nil logger and a nil error", func(t *testing.T) {
		LogError(nil, "ignored", assert.AnError)

		var buf bytes.Buffer
		LogError(NewStructuredLogger(&buf, slog.LevelInfo), "no cause", nil)
		assert.Contains(t, buf.String(), `"msg":"no cause"`)
		assert.NotContains(t, buf.String(), `"error"`)
	})

	t.Run("LogOperation drops zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "catalogue_built",
			slog.Int("stops_count", 150),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"catalogue_built"`)
		assert.Contains(t, output, `"stops_count":150`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogOperation keeps real durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "routing_graph_built", slog.Duration("duration", time.Millisecond))
		assert.Contains(t, buf.String(), `"duration":1000000`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/v1/route.json", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/v1/route.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
		assert.Contains(t, output, `"level":"INFO"`)
	})

	t.Run("LogHTTPRequest levels follow the status", func(t *testing.T) {
		tests := []struct {
			status int
			level  string
		}{
			{http.StatusOK, `"level":"INFO"`},
			{http.StatusNotFound, `"level":"WARN"`},
			{http.StatusTooManyRequests, `"level":"WARN"`},
			{http.StatusInternalServerError, `"level":"ERROR"`},
		}
		for _, tt := range tests {
			var buf bytes.Buffer
			logger := NewStructuredLogger(&buf, slog.LevelInfo)

			LogHTTPRequest(logger, "GET", "/api/v1/map.svg", tt.status, 0.5)
			assert.Contains(t, buf.String(), tt.level, tt.status)
		}
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)
		retrieved := FromContext(ctx)
		require.NotNil(t, retrieved)

		retrieved.Info("test from context")
		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		assert.Same(t, slog.Default(), logger)
	})
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelError)

	err := Fatal(logger, "failed to load catalogue", assert.AnError)
	require.Error(t, err)
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Contains(t, err.Error(), "failed to load catalogue")
	assert.Contains(t, buf.String(), `"msg":"failed to load catalogue"`)
}
