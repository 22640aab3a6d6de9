package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"transportcatalogue.dev/internal/app"
	"transportcatalogue.dev/internal/config"
	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/models"
)

// createTestApi builds a RestAPI over the base.json fixture that accepts the
// key "TEST".
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Server.APIKeys = []string{"TEST"}
	cfg.Data.Document = models.GetFixturePath(t, "base.json")

	application, err := app.New(context.Background(), cfg, logging.NewStructuredLogger(io.Discard, slog.LevelInfo))
	require.NoError(t, err)

	return NewRestAPI(application)
}

// serveApiAndRetrieve runs the full handler chain against endpoint and
// returns the response with its body read.
func serveApiAndRetrieve(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// serveAndRetrieveEndpoint decodes the response envelope of a JSON endpoint.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	resp, body := serveApiAndRetrieve(t, createTestApi(t), endpoint)

	var model models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &model), string(body))
	return resp, model
}

// entryOf extracts data.entry from a decoded envelope.
func entryOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "entry should be an object")
	return entry
}

func referencesOf(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	refs, ok := data["references"].(map[string]interface{})
	require.True(t, ok)
	return refs
}
