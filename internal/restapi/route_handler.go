package restapi

import (
	"errors"
	"net/http"

	"transportcatalogue.dev/internal/models"
	"transportcatalogue.dev/internal/router"
	"transportcatalogue.dev/internal/utils"
)

// routeHandler answers /route.json?from=&to= with the fastest itinerary.
// Unknown stops and unconnected pairs are both reported as not found.
func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := utils.SanitizeInput(query.Get("from"))
	to := utils.SanitizeInput(query.Get("to"))

	if fieldErrors := utils.ValidateRouteParams(from, to); len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	itinerary, err := api.Router.GetItinerary(from, to)
	if errors.Is(err, router.ErrUnknownStop) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if itinerary == nil {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(
		models.NewItineraryEntry(from, to, itinerary),
		api.itineraryReferences(itinerary),
	))
}

func (api *RestAPI) itineraryReferences(it *router.Itinerary) models.ReferencesModel {
	refs := models.NewEmptyReferences()
	seenStops := make(map[string]bool)
	seenBuses := make(map[string]bool)
	for _, item := range it.Items {
		switch item.Type {
		case router.ActivityWait:
			if seenStops[item.StopName] {
				continue
			}
			seenStops[item.StopName] = true
			if stop := api.Catalogue.FindStop(item.StopName); stop != nil {
				refs.Stops = append(refs.Stops, models.NewStopReference(*stop))
			}
		case router.ActivityBus:
			if !seenBuses[item.BusName] {
				seenBuses[item.BusName] = true
				refs.Buses = append(refs.Buses, item.BusName)
			}
		}
	}
	return refs
}
