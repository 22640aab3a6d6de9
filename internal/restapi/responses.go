package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/models"
)

// sendResponse writes a 200 envelope. The body is encoded before the header
// goes out so an unencodable payload still yields a clean 500.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := body.WriteTo(w); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write response", err)
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, http.StatusNotFound, 2, "resource not found")
}
