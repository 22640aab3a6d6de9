package models

import "transportcatalogue.dev/internal/catalogue"

type StopEntry struct {
	Name  string   `json:"name"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
	Buses []string `json:"buses"`
}

func NewStopEntry(stop catalogue.Stop, info *catalogue.StopInfo) StopEntry {
	entry := StopEntry{
		Name:  stop.Name,
		Lat:   stop.Coordinates.Lat,
		Lon:   stop.Coordinates.Lng,
		Buses: []string{},
	}
	if info != nil && len(info.Buses) > 0 {
		entry.Buses = info.Buses
	}
	return entry
}

func NewStopReference(stop catalogue.Stop) StopReference {
	return StopReference{Name: stop.Name, Lat: stop.Coordinates.Lat, Lon: stop.Coordinates.Lng}
}
