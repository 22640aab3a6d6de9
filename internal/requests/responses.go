package requests

import "transportcatalogue.dev/internal/router"

const notFoundMessage = "not found"

type ErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type BusResponse struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

type RouteResponse struct {
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []RouteItem `json:"items"`
}

// RouteItem is a Wait item (StopName set) or a Bus item (Bus and SpanCount set).
type RouteItem struct {
	Type      router.ActivityType `json:"type"`
	StopName  string              `json:"stop_name,omitempty"`
	Bus       string              `json:"bus,omitempty"`
	SpanCount int                 `json:"span_count,omitempty"`
	Time      float64             `json:"time"`
}

type MapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

func notFound(id int) ErrorResponse {
	return ErrorResponse{RequestID: id, ErrorMessage: notFoundMessage}
}

// NewRouteItems converts an itinerary into its wire form.
func NewRouteItems(it *router.Itinerary) []RouteItem {
	items := make([]RouteItem, 0, len(it.Items))
	for _, a := range it.Items {
		item := RouteItem{Type: a.Type, Time: a.Time}
		if a.Type == router.ActivityWait {
			item.StopName = a.StopName
		} else {
			item.Bus = a.BusName
			item.SpanCount = a.SpanCount
		}
		items = append(items, item)
	}
	return items
}
