package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractNameFromParams retrieves a path parameter from the request context
// and strips a trailing ".json". Names may contain spaces, so the value is
// returned as httprouter decoded it.
func ExtractNameFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return strings.TrimSuffix(params.ByName(paramName), ".json")
}
