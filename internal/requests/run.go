package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"transportcatalogue.dev/internal/config"
	"transportcatalogue.dev/internal/renderer"
)

// Run reads a request document from r, answers its stat requests and writes
// the JSON response array to w.
func Run(logger *slog.Logger, r io.Reader, w io.Writer) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}

	cat, err := BuildCatalogue(logger, doc.BaseRequests)
	if err != nil {
		return err
	}

	renderSettings := renderer.DefaultSettings()
	if doc.RenderSettings != nil {
		renderSettings = *doc.RenderSettings
	}
	mapRenderer, err := renderer.New(renderSettings)
	if err != nil {
		return err
	}

	h := &Handler{Catalogue: cat, Renderer: mapRenderer, Logger: logger}
	if needsRouting(doc.StatRequests) {
		routing := config.Default().Routing
		if doc.RoutingSettings != nil {
			routing = *doc.RoutingSettings
		}
		if h.Router, err = BuildRouter(logger, cat, routing); err != nil {
			return err
		}
	}

	responses, err := h.Process(doc.StatRequests)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(responses); err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}
	return nil
}

func needsRouting(reqs []StatRequest) bool {
	for _, req := range reqs {
		if req.Type == TypeRoute {
			return true
		}
	}
	return false
}
