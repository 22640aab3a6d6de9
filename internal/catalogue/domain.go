package catalogue

import "transportcatalogue.dev/internal/geo"

// Stop is a named point. Stops are never modified after being added.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route over catalogue stops. For a linear bus Stops holds
// the outbound half only; Route expands it.
type Bus struct {
	Name        string
	Stops       []StopID
	IsRoundtrip bool
}

// Route returns the stop sequence a vehicle actually visits: the stored
// order for a roundtrip bus, and outbound then back for a linear one with
// the turnaround stop visited once.
func (b Bus) Route() []StopID {
	if b.IsRoundtrip || len(b.Stops) == 0 {
		out := make([]StopID, len(b.Stops))
		copy(out, b.Stops)
		return out
	}
	out := make([]StopID, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// Terminal returns the index in Route of the last stored stop, which for a
// linear bus is where it turns around.
func (b Bus) Terminal() int {
	return len(b.Stops) - 1
}

// BusInfo holds route statistics.
type BusInfo struct {
	// StopCount counts every visit, so a linear bus over n stops has 2n-1.
	StopCount       int
	UniqueStopCount int
	// RouteLength is the road length in meters.
	RouteLength int
	// Curvature is RouteLength divided by the great-circle length of the same path.
	Curvature float64
}

// StopInfo lists the buses serving a stop in lexicographic order.
type StopInfo struct {
	Buses []string
}
