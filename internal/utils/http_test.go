package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractNameFromParams(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"plain name", "/bus/14", "14"},
		{"json suffix", "/bus/14.json", "14"},
		{"escaped spaces", "/bus/Sea%20Station.json", "Sea Station"},
		{"dots kept", "/bus/No.5", "No.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			router := httprouter.New()
			router.HandlerFunc(http.MethodGet, "/bus/:name", func(w http.ResponseWriter, r *http.Request) {
				got = ExtractNameFromParams(r, "name")
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractNameFromParamsWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/bus/14", nil)
	assert.Equal(t, "", ExtractNameFromParams(req, "name"))
}
