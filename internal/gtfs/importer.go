package gtfs

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/jamespfennell/gtfs"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/geo"
	"transportcatalogue.dev/internal/logging"
)

var ErrNoUsableTrips = errors.New("feed has no trips with located stops")

// Import turns a static feed into a catalogue. Each route becomes one
// roundtrip bus that follows its longest trip. Road distances come from
// shape_dist_traveled when it is present and scaled, and from the
// great-circle distance otherwise.
func Import(logger *slog.Logger, staticData *gtfs.Static, config Config) (*catalogue.Finalized, error) {
	start := time.Now()

	trips := representativeTrips(logger, staticData.Trips)
	if len(trips) == 0 {
		return nil, ErrNoUsableTrips
	}

	c := catalogue.New()
	stopNames := make(map[string]string)
	for _, stop := range usedStops(trips) {
		stopNames[stop.Id] = stop.Name
		coords := geo.Coordinates{Lat: *stop.Latitude, Lng: *stop.Longitude}
		if _, err := c.AddStop(stop.Name, coords); err != nil {
			return nil, fmt.Errorf("stop %s: %w", stop.Id, err)
		}
	}

	seen := make(map[[2]string]struct{})
	for _, trip := range trips {
		stopTimes := trip.StopTimes
		for i := 1; i < len(stopTimes); i++ {
			prev, cur := stopTimes[i-1], stopTimes[i]
			if prev.Stop.Id == cur.Stop.Id {
				continue
			}
			key := [2]string{prev.Stop.Id, cur.Stop.Id}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			meters := segmentMeters(prev, cur, config.ShapeDistanceScale)
			if err := c.SetDistanceByName(stopNames[prev.Stop.Id], stopNames[cur.Stop.Id], meters); err != nil {
				return nil, fmt.Errorf("trip %s: %w", trip.ID, err)
			}
		}
	}

	busNames := uniqueNames(trips)
	for i, trip := range trips {
		names := make([]string, 0, len(trip.StopTimes))
		for _, st := range trip.StopTimes {
			names = append(names, stopNames[st.Stop.Id])
		}
		if err := c.AddBus(busNames[i], names, true); err != nil {
			return nil, fmt.Errorf("route %s: %w", trip.Route.Id, err)
		}
	}

	logging.LogOperation(logger, "gtfs_imported",
		slog.Int("stops_count", c.StopCount()),
		slog.Int("buses_count", c.BusCount()),
		slog.Duration("duration", time.Since(start)))
	return c.Finalize(), nil
}

// representativeTrips picks the trip with the most stops for every route,
// with stop times in sequence order. Trips touching a stop without
// coordinates are skipped.
func representativeTrips(logger *slog.Logger, all []gtfs.ScheduledTrip) []gtfs.ScheduledTrip {
	best := make(map[string]gtfs.ScheduledTrip)
	skipped := 0
	for _, trip := range all {
		if trip.Route == nil || len(trip.StopTimes) == 0 {
			continue
		}
		if !located(trip.StopTimes) {
			skipped++
			continue
		}
		current, ok := best[trip.Route.Id]
		if !ok || len(trip.StopTimes) > len(current.StopTimes) ||
			(len(trip.StopTimes) == len(current.StopTimes) && trip.ID < current.ID) {
			best[trip.Route.Id] = trip
		}
	}
	if skipped > 0 {
		logger.Warn("skipped trips with unlocated stops", slog.Int("trips_count", skipped))
	}

	trips := make([]gtfs.ScheduledTrip, 0, len(best))
	for _, trip := range best {
		stopTimes := make([]gtfs.ScheduledStopTime, len(trip.StopTimes))
		copy(stopTimes, trip.StopTimes)
		sort.SliceStable(stopTimes, func(i, j int) bool {
			return stopTimes[i].StopSequence < stopTimes[j].StopSequence
		})
		trip.StopTimes = stopTimes
		trips = append(trips, trip)
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].Route.Id < trips[j].Route.Id })
	return trips
}

func located(stopTimes []gtfs.ScheduledStopTime) bool {
	for _, st := range stopTimes {
		if st.Stop == nil || st.Stop.Latitude == nil || st.Stop.Longitude == nil {
			return false
		}
	}
	return true
}

// usedStops returns the distinct stops of trips, ordered by id. Stops that
// share a display name are told apart by their id.
func usedStops(trips []gtfs.ScheduledTrip) []*gtfs.Stop {
	byID := make(map[string]*gtfs.Stop)
	for _, trip := range trips {
		for _, st := range trip.StopTimes {
			byID[st.Stop.Id] = st.Stop
		}
	}
	stops := make([]*gtfs.Stop, 0, len(byID))
	for _, stop := range byID {
		stops = append(stops, stop)
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].Id < stops[j].Id })

	counts := make(map[string]int)
	for _, stop := range stops {
		counts[stop.Name]++
	}
	for i, stop := range stops {
		if stop.Name == "" || counts[stop.Name] > 1 {
			renamed := *stop
			renamed.Name = qualified(stop.Name, stop.Id)
			stops[i] = &renamed
		}
	}
	return stops
}

func routeName(route *gtfs.Route) string {
	if route.ShortName != "" {
		return route.ShortName
	}
	return route.LongName
}

func uniqueNames(trips []gtfs.ScheduledTrip) []string {
	counts := make(map[string]int)
	for _, trip := range trips {
		counts[routeName(trip.Route)]++
	}
	names := make([]string, len(trips))
	for i, trip := range trips {
		name := routeName(trip.Route)
		if name == "" || counts[name] > 1 {
			name = qualified(name, trip.Route.Id)
		}
		names[i] = name
	}
	return names
}

func qualified(name, id string) string {
	if name == "" {
		return id
	}
	return fmt.Sprintf("%s [%s]", name, id)
}

func segmentMeters(from, to gtfs.ScheduledStopTime, scale float64) int {
	if scale > 0 && from.ShapeDistanceTraveled != nil && to.ShapeDistanceTraveled != nil {
		if d := (*to.ShapeDistanceTraveled - *from.ShapeDistanceTraveled) * scale; d > 0 {
			return int(math.Round(d))
		}
	}
	a := geo.Coordinates{Lat: *from.Stop.Latitude, Lng: *from.Stop.Longitude}
	b := geo.Coordinates{Lat: *to.Stop.Latitude, Lng: *to.Stop.Longitude}
	return int(math.Round(geo.Distance(a, b)))
}
