package app

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader may carry the key instead of the "key" query parameter.
const APIKeyHeader = "X-API-Key"

// RequestAPIKey returns the key a request presents. The query parameter wins
// over the header.
func RequestAPIKey(r *http.Request) string {
	if key := r.URL.Query().Get("key"); key != "" {
		return key
	}
	return r.Header.Get(APIKeyHeader)
}

func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(RequestAPIKey(r))
}

// IsInvalidAPIKey reports whether key is blank or not configured. Keys are
// compared in constant time.
func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}
	valid := 0
	for _, k := range app.Config.Server.APIKeys {
		valid |= subtle.ConstantTimeCompare([]byte(k), []byte(key))
	}
	return valid == 0
}
