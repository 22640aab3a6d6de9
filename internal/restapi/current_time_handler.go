package restapi

import (
	"net/http"
	"time"

	"transportcatalogue.dev/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	entry := models.NewStatusEntry(time.Now(), api.Catalogue)
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewEmptyReferences()))
}
