package requests

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/config"
	"transportcatalogue.dev/internal/geo"
	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/router"
)

// BuildCatalogue adds every stop, then every road distance, then every bus,
// and finalizes the result. The first failing request aborts the build.
func BuildCatalogue(logger *slog.Logger, base []BaseRequest) (*catalogue.Finalized, error) {
	start := time.Now()
	c := catalogue.New()

	for _, req := range base {
		if req.Type != TypeStop {
			continue
		}
		if _, err := c.AddStop(req.Name, geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}); err != nil {
			return nil, fmt.Errorf("stop %q: %w", req.Name, err)
		}
	}

	for _, req := range base {
		if req.Type != TypeStop {
			continue
		}
		neighbours := make([]string, 0, len(req.RoadDistances))
		for name := range req.RoadDistances {
			neighbours = append(neighbours, name)
		}
		sort.Strings(neighbours)
		for _, to := range neighbours {
			if err := c.SetDistanceByName(req.Name, to, req.RoadDistances[to]); err != nil {
				return nil, fmt.Errorf("road distance %q -> %q: %w", req.Name, to, err)
			}
		}
	}

	for _, req := range base {
		if req.Type != TypeBus {
			continue
		}
		if err := c.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return nil, fmt.Errorf("bus %q: %w", req.Name, err)
		}
	}

	logging.LogOperation(logger, "catalogue_built",
		slog.Int("stops_count", c.StopCount()),
		slog.Int("buses_count", c.BusCount()),
		slog.Duration("duration", time.Since(start)))
	return c.Finalize(), nil
}

// BuildRouter builds the routing graph over cat with rider-facing settings.
func BuildRouter(logger *slog.Logger, cat *catalogue.Finalized, settings config.RoutingSettings) (*router.Router, error) {
	start := time.Now()
	r, err := router.New(cat, settings.ToRouterSettings())
	if err != nil {
		return nil, fmt.Errorf("build routing graph: %w", err)
	}
	logging.LogOperation(logger, "routing_graph_built",
		slog.Int("vertices_count", r.Graph().VertexCount()),
		slog.Int("edges_count", r.Graph().EdgeCount()),
		slog.Duration("duration", time.Since(start)))
	return r, nil
}
