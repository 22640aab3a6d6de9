package restapi

import (
	"net/http"

	"transportcatalogue.dev/internal/models"
)

func (api *RestAPI) busesHandler(w http.ResponseWriter, r *http.Request) {
	buses := api.Catalogue.Buses()
	list := make([]models.BusSummary, 0, len(buses))
	refs := models.NewEmptyReferences()
	for _, bus := range buses {
		list = append(list, models.NewBusSummary(bus))
		refs.Buses = append(refs.Buses, bus.Name)
	}
	api.sendResponse(w, r, models.NewListResponse(list, refs))
}
