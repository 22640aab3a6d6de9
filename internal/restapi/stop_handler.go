package restapi

import (
	"net/http"

	"transportcatalogue.dev/internal/models"
	"transportcatalogue.dev/internal/utils"
)

func (api *RestAPI) stopHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractNameFromParams(r, "name")
	if err := utils.ValidateName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"name": {err.Error()}})
		return
	}

	stop := api.Catalogue.FindStop(name)
	if stop == nil {
		api.sendNotFound(w, r)
		return
	}

	entry := models.NewStopEntry(*stop, api.Catalogue.StopInfo(name))
	refs := models.NewEmptyReferences()
	refs.Stops = append(refs.Stops, models.NewStopReference(*stop))
	refs.Buses = append(refs.Buses, entry.Buses...)

	api.sendResponse(w, r, models.NewEntryResponse(entry, refs))
}
