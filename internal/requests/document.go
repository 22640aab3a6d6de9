// Package requests reads JSON request documents, fills a catalogue from
// their base requests and answers their stat requests.
package requests

import (
	"encoding/json"
	"fmt"
	"io"

	"transportcatalogue.dev/internal/config"
	"transportcatalogue.dev/internal/renderer"
)

const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// Document is the top level request object.
type Document struct {
	BaseRequests    []BaseRequest           `json:"base_requests" validate:"dive"`
	StatRequests    []StatRequest           `json:"stat_requests" validate:"dive"`
	RenderSettings  *renderer.Settings      `json:"render_settings"`
	RoutingSettings *config.RoutingSettings `json:"routing_settings"`
}

// BaseRequest describes a stop (with coordinates and road distances to its
// neighbours) or a bus (with its stop names).
type BaseRequest struct {
	Type          string         `json:"type" validate:"oneof=Stop Bus"`
	Name          string         `json:"name" validate:"required"`
	Latitude      float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances" validate:"dive,gte=0"`
	Stops         []string       `json:"stops"`
	IsRoundtrip   bool           `json:"is_roundtrip"`
}

type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"oneof=Stop Bus Route Map"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Decode reads and validates a document, including the settings blocks
// that are present.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode request document: %w", err)
	}
	if err := config.Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
