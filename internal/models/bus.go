package models

import (
	"github.com/twpayne/go-polyline"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/geo"
)

// BusEntry describes a bus with its route statistics. Polyline is the
// Google encoded polyline of the route a vehicle actually drives. Direction
// is the compass heading from the first stop to the stop halfway along the
// route, which for a linear bus is its terminal.
type BusEntry struct {
	Name            string   `json:"name"`
	IsRoundtrip     bool     `json:"isRoundtrip"`
	Stops           []string `json:"stops"`
	StopCount       int      `json:"stopCount"`
	UniqueStopCount int      `json:"uniqueStopCount"`
	RouteLength     int      `json:"routeLength"`
	Curvature       float64  `json:"curvature"`
	Polyline        string   `json:"polyline"`
	Direction       string   `json:"direction,omitempty"`
}

// BusSummary is a list item of the buses endpoint.
type BusSummary struct {
	Name        string `json:"name"`
	IsRoundtrip bool   `json:"isRoundtrip"`
	StopCount   int    `json:"stopCount"`
}

type StopLookup interface {
	Stop(id catalogue.StopID) catalogue.Stop
}

// NewBusEntry builds the entry and the stop references for a bus. info may be
// nil when statistics are unavailable.
func NewBusEntry(bus catalogue.Bus, info *catalogue.BusInfo, stops StopLookup) (BusEntry, ReferencesModel) {
	entry := BusEntry{
		Name:        bus.Name,
		IsRoundtrip: bus.IsRoundtrip,
		Stops:       make([]string, 0, len(bus.Stops)),
	}
	refs := NewEmptyReferences()
	seen := make(map[catalogue.StopID]struct{}, len(bus.Stops))
	for _, id := range bus.Stops {
		stop := stops.Stop(id)
		entry.Stops = append(entry.Stops, stop.Name)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		refs.Stops = append(refs.Stops, NewStopReference(stop))
	}

	route := bus.Route()
	coords := make([][]float64, 0, len(route))
	for _, id := range route {
		c := stops.Stop(id).Coordinates
		coords = append(coords, []float64{c.Lat, c.Lng})
	}
	entry.Polyline = string(polyline.EncodeCoords(coords))
	if len(route) > 1 {
		entry.Direction = geo.CompassDirection(
			stops.Stop(route[0]).Coordinates,
			stops.Stop(route[len(route)/2]).Coordinates,
		)
	}

	if info != nil {
		entry.StopCount = info.StopCount
		entry.UniqueStopCount = info.UniqueStopCount
		entry.RouteLength = info.RouteLength
		entry.Curvature = info.Curvature
	}
	return entry, refs
}

func NewBusSummary(bus catalogue.Bus) BusSummary {
	return BusSummary{
		Name:        bus.Name,
		IsRoundtrip: bus.IsRoundtrip,
		StopCount:   len(bus.Route()),
	}
}
