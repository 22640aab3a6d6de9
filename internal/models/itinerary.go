package models

import "transportcatalogue.dev/internal/router"

// ItineraryItem is one wait or ride. Times are in minutes.
type ItineraryItem struct {
	Type      router.ActivityType `json:"type"`
	StopName  string              `json:"stopName,omitempty"`
	Bus       string              `json:"bus,omitempty"`
	SpanCount int                 `json:"spanCount,omitempty"`
	Time      float64             `json:"time"`
}

type ItineraryEntry struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	TotalTime float64         `json:"totalTime"`
	Items     []ItineraryItem `json:"items"`
}

func NewItineraryEntry(from, to string, it *router.Itinerary) ItineraryEntry {
	entry := ItineraryEntry{
		From:      from,
		To:        to,
		TotalTime: it.TotalTime,
		Items:     make([]ItineraryItem, 0, len(it.Items)),
	}
	for _, a := range it.Items {
		entry.Items = append(entry.Items, ItineraryItem{
			Type:      a.Type,
			StopName:  a.StopName,
			Bus:       a.BusName,
			SpanCount: a.SpanCount,
			Time:      a.Time,
		})
	}
	return entry
}
