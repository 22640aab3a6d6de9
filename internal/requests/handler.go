package requests

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/logging"
	"transportcatalogue.dev/internal/renderer"
	"transportcatalogue.dev/internal/router"
)

var (
	ErrRoutingUnavailable = errors.New("routing is not configured")
	ErrUnknownRequestType = errors.New("unknown request type")
)

// Handler answers stat requests against a finalized catalogue. Router may be
// nil when the document has no routing requests.
type Handler struct {
	Catalogue *catalogue.Finalized
	Router    *router.Router
	Renderer  *renderer.MapRenderer
	Logger    *slog.Logger
}

// Process answers each request in order. A missing stop, bus or route is a
// "not found" response, not an error.
func (h *Handler) Process(reqs []StatRequest) ([]any, error) {
	out := make([]any, 0, len(reqs))
	var mapSVG *string
	for _, req := range reqs {
		var resp any
		var err error
		switch req.Type {
		case TypeStop:
			resp = h.stop(req)
		case TypeBus:
			resp = h.bus(req)
		case TypeRoute:
			resp, err = h.route(req)
		case TypeMap:
			if mapSVG == nil {
				var svg string
				if svg, err = h.renderMap(); err == nil {
					mapSVG = &svg
				}
			}
			if err == nil {
				resp = MapResponse{RequestID: req.ID, Map: *mapSVG}
			}
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownRequestType, req.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("request %d: %w", req.ID, err)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (h *Handler) stop(req StatRequest) any {
	info := h.Catalogue.StopInfo(req.Name)
	if info == nil {
		return notFound(req.ID)
	}
	return StopResponse{RequestID: req.ID, Buses: info.Buses}
}

func (h *Handler) bus(req StatRequest) any {
	info, err := h.Catalogue.BusInfo(req.Name)
	if info == nil {
		return notFound(req.ID)
	}
	if errors.Is(err, catalogue.ErrDegenerateRoute) {
		// curvature is undefined for a route of zero geographic length
		logging.LogError(h.Logger, "bus curvature undefined", err, slog.String("bus", req.Name))
	}
	return BusResponse{
		RequestID:       req.ID,
		Curvature:       info.Curvature,
		RouteLength:     info.RouteLength,
		StopCount:       info.StopCount,
		UniqueStopCount: info.UniqueStopCount,
	}
}

func (h *Handler) route(req StatRequest) (any, error) {
	if h.Router == nil {
		return nil, ErrRoutingUnavailable
	}
	itinerary, err := h.Router.GetItinerary(req.From, req.To)
	if errors.Is(err, router.ErrUnknownStop) {
		return notFound(req.ID), nil
	}
	if err != nil {
		return nil, err
	}
	if itinerary == nil {
		return notFound(req.ID), nil
	}
	return RouteResponse{
		RequestID: req.ID,
		TotalTime: itinerary.TotalTime,
		Items:     NewRouteItems(itinerary),
	}, nil
}

func (h *Handler) renderMap() (string, error) {
	var sb strings.Builder
	if err := h.Renderer.Render(&sb, h.Catalogue); err != nil {
		return "", fmt.Errorf("render map: %w", err)
	}
	return sb.String(), nil
}
