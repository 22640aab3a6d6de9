package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"transportcatalogue.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.Server.RateLimit, time.Second),
	}
}

// Handler returns the API routes wrapped in the shared middleware: security
// headers outermost, then request logging and response compression.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)
	return api.WithSecurityHeaders(
		NewRequestLoggingMiddleware(api.Logger)(
			CompressionMiddleware(router)))
}
