package restapi

import (
	"bytes"
	"net/http"

	"transportcatalogue.dev/internal/logging"
)

// mapHandler renders the whole network. The document is buffered so that a
// rendering failure can still be reported as a 500.
func (api *RestAPI) mapHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := api.Renderer.Render(&buf, api.Catalogue); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write map", err)
	}
}
