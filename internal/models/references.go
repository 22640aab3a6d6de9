package models

// ReferencesModel carries the stops and buses an entry mentions by name.
type ReferencesModel struct {
	Stops []StopReference `json:"stops"`
	Buses []string        `json:"buses"`
}

type StopReference struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// NewEmptyReferences creates references with empty, non-nil slices so they
// encode as [] rather than null.
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Stops: []StopReference{},
		Buses: []string{},
	}
}
