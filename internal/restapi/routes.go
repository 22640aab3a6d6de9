package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

const apiPrefix = "/api/v1"

// protected rate limits a handler per API key and rejects unknown keys.
func (api *RestAPI) protected(finalHandler http.HandlerFunc) http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
	if api.rateLimiter == nil {
		return handler
	}
	return api.rateLimiter(handler)
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, apiPrefix+"/buses.json", api.protected(api.busesHandler))
	router.Handler(http.MethodGet, apiPrefix+"/bus/:name", api.protected(api.busHandler))
	router.Handler(http.MethodGet, apiPrefix+"/stop/:name", api.protected(api.stopHandler))
	router.Handler(http.MethodGet, apiPrefix+"/route.json", api.protected(api.routeHandler))
	router.Handler(http.MethodGet, apiPrefix+"/map.svg", api.protected(api.mapHandler))
	router.Handler(http.MethodGet, apiPrefix+"/current-time.json", api.protected(api.currentTimeHandler))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}
