package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transportcatalogue.dev/internal/app"
)

func TestBusesHandler(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/v1/buses.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, 2, model.Version)

	data := model.Data.(map[string]interface{})
	assert.Equal(t, false, data["limitExceeded"])
	list := data["list"].([]interface{})
	require.Len(t, list, 2)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "114", first["name"])
	assert.Equal(t, false, first["isRoundtrip"])
	assert.Equal(t, 3.0, first["stopCount"])

	second := list[1].(map[string]interface{})
	assert.Equal(t, "14", second["name"])
	assert.Equal(t, true, second["isRoundtrip"])
	assert.Equal(t, 4.0, second["stopCount"])

	assert.Equal(t, []interface{}{"114", "14"}, referencesOf(t, model)["buses"])
}

func TestBusHandler(t *testing.T) {
	tests := []struct {
		name        string
		endpoint    string
		busName     string
		roundtrip   bool
		stopCount   float64
		uniqueStops float64
		routeLength float64
	}{
		{"roundtrip", "/api/v1/bus/14?key=TEST", "14", true, 4, 3, 4500},
		{"linear with json suffix", "/api/v1/bus/114.json?key=TEST", "114", false, 3, 2, 1700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, model := serveAndRetrieveEndpoint(t, tt.endpoint)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			entry := entryOf(t, model)
			assert.Equal(t, tt.busName, entry["name"])
			assert.Equal(t, tt.roundtrip, entry["isRoundtrip"])
			assert.Equal(t, tt.stopCount, entry["stopCount"])
			assert.Equal(t, tt.uniqueStops, entry["uniqueStopCount"])
			assert.Equal(t, tt.routeLength, entry["routeLength"])
			assert.Greater(t, entry["curvature"].(float64), 0.0)
			assert.NotEmpty(t, entry["polyline"])
			assert.NotEmpty(t, entry["direction"])

			refs := referencesOf(t, model)
			assert.Equal(t, []interface{}{tt.busName}, refs["buses"])
			assert.Len(t, refs["stops"], int(tt.uniqueStops))
		})
	}
}

func TestBusHandlerNotFound(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/v1/bus/999?key=TEST")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, model.Code)
	assert.Equal(t, "resource not found", model.Text)
}

func TestBusHandlerRejectsSuspiciousNames(t *testing.T) {
	resp, body := serveApiAndRetrieve(t, createTestApi(t), "/api/v1/bus/a--b?key=TEST")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	assert.Contains(t, response.FieldErrors, "name")
}

func TestStopHandler(t *testing.T) {
	t.Run("served stop", func(t *testing.T) {
		resp, model := serveAndRetrieveEndpoint(t, "/api/v1/stop/Sea%20Station?key=TEST")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		entry := entryOf(t, model)
		assert.Equal(t, "Sea Station", entry["name"])
		assert.InDelta(t, 43.581969, entry["lat"], 1e-9)
		assert.InDelta(t, 39.719848, entry["lon"], 1e-9)
		assert.Equal(t, []interface{}{"114", "14"}, entry["buses"])

		refs := referencesOf(t, model)
		assert.Len(t, refs["stops"], 1)
		assert.Equal(t, []interface{}{"114", "14"}, refs["buses"])
	})

	t.Run("stop without buses", func(t *testing.T) {
		resp, model := serveAndRetrieveEndpoint(t, "/api/v1/stop/Depot.json?key=TEST")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []interface{}{}, entryOf(t, model)["buses"])
	})

	t.Run("unknown stop", func(t *testing.T) {
		resp, model := serveAndRetrieveEndpoint(t, "/api/v1/stop/Nowhere?key=TEST")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "resource not found", model.Text)
	})
}

func TestRouteHandler(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/v1/route.json?key=TEST&from=Riviera%20Bridge&to=Art%20School")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, "Riviera Bridge", entry["from"])
	assert.Equal(t, "Art School", entry["to"])
	assert.InDelta(t, 9.7, entry["totalTime"], 1e-9)

	items := entry["items"].([]interface{})
	require.Len(t, items, 4)

	wait := items[0].(map[string]interface{})
	assert.Equal(t, "Wait", wait["type"])
	assert.Equal(t, "Riviera Bridge", wait["stopName"])
	assert.InDelta(t, 2.0, wait["time"], 1e-9)

	ride := items[1].(map[string]interface{})
	assert.Equal(t, "Bus", ride["type"])
	assert.Equal(t, "114", ride["bus"])
	assert.Equal(t, 1.0, ride["spanCount"])
	assert.InDelta(t, 1.7, ride["time"], 1e-9)

	transfer := items[3].(map[string]interface{})
	assert.Equal(t, "14", transfer["bus"])
	assert.Equal(t, 2.0, transfer["spanCount"])
	assert.InDelta(t, 4.0, transfer["time"], 1e-9)

	refs := referencesOf(t, model)
	assert.Equal(t, []interface{}{"114", "14"}, refs["buses"])
	assert.Len(t, refs["stops"], 2)
}

func TestRouteHandlerSameStop(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/v1/route.json?key=TEST&from=Depot&to=Depot")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.Equal(t, 0.0, entry["totalTime"])
	assert.Equal(t, []interface{}{}, entry["items"])
}

func TestRouteHandlerErrors(t *testing.T) {
	api := createTestApi(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantFields []string
	}{
		{"missing both", "", http.StatusBadRequest, []string{"from", "to"}},
		{"missing to", "&from=Depot", http.StatusBadRequest, []string{"to"}},
		{"unknown stop", "&from=Depot&to=Nowhere", http.StatusNotFound, nil},
		{"unreachable", "&from=Depot&to=Art%20School", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := serveApiAndRetrieve(t, api, "/api/v1/route.json?key=TEST"+tt.query)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantFields == nil {
				return
			}
			var response struct {
				FieldErrors map[string][]string `json:"fieldErrors"`
			}
			require.NoError(t, json.Unmarshal(body, &response))
			for _, field := range tt.wantFields {
				assert.Contains(t, response.FieldErrors, field)
			}
			assert.Len(t, response.FieldErrors, len(tt.wantFields))
		})
	}
}

func TestMapHandler(t *testing.T) {
	resp, body := serveApiAndRetrieve(t, createTestApi(t), "/api/v1/map.svg?key=TEST")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	svg := string(body)
	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8" ?>`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 2, strings.Count(svg, "<polyline"))
	// Depot is not served by any bus
	assert.NotContains(t, svg, "Depot")
}

func TestCurrentTimeHandler(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/v1/current-time.json?key=TEST")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryOf(t, model)
	assert.NotEmpty(t, entry["readableTime"])
	assert.InDelta(t, float64(model.CurrentTime), entry["time"], 60000)
	assert.Equal(t, 5.0, entry["stopCount"])
	assert.Equal(t, 2.0, entry["busCount"])
}

func TestInvalidAPIKey(t *testing.T) {
	for _, endpoint := range []string{
		"/api/v1/buses.json",
		"/api/v1/bus/14?key=invalid",
		"/api/v1/map.svg?key=",
	} {
		resp, model := serveAndRetrieveEndpoint(t, endpoint)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, endpoint)
		assert.Equal(t, "permission denied", model.Text)
		assert.Equal(t, 1, model.Version)
	}
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	resp, model := serveAndRetrieveEndpoint(t, "/api/v1/agencies.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}

func TestAPIKeyHeader(t *testing.T) {
	api := createTestApi(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bus/14", nil)
	req.Header.Set(app.APIKeyHeader, "TEST")
	rr := httptest.NewRecorder()
	api.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/bus/14", nil)
	req.Header.Set(app.APIKeyHeader, "wrong")
	rr = httptest.NewRecorder()
	api.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
