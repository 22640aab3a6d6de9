package restapi

import (
	"errors"
	"log/slog"
	"net/http"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/models"
	"transportcatalogue.dev/internal/utils"
)

func (api *RestAPI) busHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractNameFromParams(r, "name")
	if err := utils.ValidateName(name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"name": {err.Error()}})
		return
	}

	bus := api.Catalogue.FindBus(name)
	if bus == nil {
		api.sendNotFound(w, r)
		return
	}

	info, err := api.Catalogue.BusInfo(name)
	if errors.Is(err, catalogue.ErrDegenerateRoute) {
		// the statistics are still meaningful apart from the curvature
		logging.LogError(logging.FromContext(r.Context()), "bus curvature undefined", err,
			slog.String("bus", name))
	} else if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry, refs := models.NewBusEntry(*bus, info, api.Catalogue)
	refs.Buses = append(refs.Buses, bus.Name)
	api.sendResponse(w, r, models.NewEntryResponse(entry, refs))
}
