// Package catalogue keeps the registry of stops, buses and road distances
// and answers aggregate queries about them.
//
// A Catalogue is filled once and then finalized. The Finalized handle is
// read-only and is the only thing the router accepts, so a graph can never be
// built from a half-populated catalogue.
package catalogue

import (
	"errors"
	"fmt"
	"sort"

	"transportcatalogue.dev/internal/geo"
)

var (
	ErrUnknownStop      = errors.New("unknown stop")
	ErrUnknownBus       = errors.New("unknown bus")
	ErrDuplicateStop    = errors.New("duplicate stop")
	ErrDuplicateBus     = errors.New("duplicate bus")
	ErrEmptyRoute       = errors.New("bus has no stops")
	ErrInvalidDistance  = errors.New("distance must be non-negative")
	ErrDistanceNotFound = errors.New("distance not found")
	ErrDegenerateRoute  = errors.New("route has zero geographic length")
	ErrFinalized        = errors.New("catalogue is finalized")
)

// StopID indexes a stop in the catalogue's stop arena.
type StopID int

type stopPair struct {
	from StopID
	to   StopID
}

// Catalogue owns stops, buses and directed distance overrides.
// The zero value is not usable; call New.
type Catalogue struct {
	stops       []Stop
	stopByName  map[string]StopID
	buses       []Bus
	busByName   map[string]int
	stopToBuses []map[string]struct{}
	distances   map[stopPair]int
	finalized   bool
}

func New() *Catalogue {
	return &Catalogue{
		stopByName: make(map[string]StopID),
		busByName:  make(map[string]int),
		distances:  make(map[stopPair]int),
	}
}

// AddStop registers a stop. Names are unique: re-adding an existing name
// fails with ErrDuplicateStop and leaves the original stop untouched.
func (c *Catalogue) AddStop(name string, coordinates geo.Coordinates) (StopID, error) {
	if c.finalized {
		return 0, ErrFinalized
	}
	if _, ok := c.stopByName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateStop, name)
	}

	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coordinates})
	c.stopByName[name] = id
	c.stopToBuses = append(c.stopToBuses, make(map[string]struct{}))
	return id, nil
}

// AddBus registers a bus over previously added stops. For a linear bus
// stopNames is the outbound half only.
func (c *Catalogue) AddBus(name string, stopNames []string, isRoundtrip bool) error {
	if c.finalized {
		return ErrFinalized
	}
	if _, ok := c.busByName[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBus, name)
	}
	if len(stopNames) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyRoute, name)
	}

	stops := make([]StopID, 0, len(stopNames))
	for _, stopName := range stopNames {
		id, ok := c.stopByName[stopName]
		if !ok {
			return fmt.Errorf("bus %q: %w: %q", name, ErrUnknownStop, stopName)
		}
		stops = append(stops, id)
	}

	c.busByName[name] = len(c.buses)
	c.buses = append(c.buses, Bus{Name: name, Stops: stops, IsRoundtrip: isRoundtrip})
	for _, id := range stops {
		c.stopToBuses[id][name] = struct{}{}
	}
	return nil
}

// SetDistance stores or overwrites the road distance from one stop to another.
func (c *Catalogue) SetDistance(from, to StopID, meters int) error {
	if c.finalized {
		return ErrFinalized
	}
	if !c.validStop(from) || !c.validStop(to) {
		return ErrUnknownStop
	}
	if meters < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDistance, meters)
	}
	c.distances[stopPair{from: from, to: to}] = meters
	return nil
}

// SetDistanceByName resolves both stop names and calls SetDistance.
func (c *Catalogue) SetDistanceByName(from, to string, meters int) error {
	fromID, ok := c.stopByName[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toID, ok := c.stopByName[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}
	return c.SetDistance(fromID, toID, meters)
}

// GetDistance returns the forward override if present, else the reverse one.
func (c *Catalogue) GetDistance(from, to StopID) (int, error) {
	if d, ok := c.distances[stopPair{from: from, to: to}]; ok {
		return d, nil
	}
	if d, ok := c.distances[stopPair{from: to, to: from}]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %s -> %s", ErrDistanceNotFound, c.stopName(from), c.stopName(to))
}

// SegmentDistance is GetDistance for consecutive stops of a route. A stop
// repeated back to back contributes zero unless an override says otherwise.
func (c *Catalogue) SegmentDistance(from, to StopID) (int, error) {
	d, err := c.GetDistance(from, to)
	if err != nil && from == to {
		return 0, nil
	}
	return d, err
}

// FindStop returns the stop with the given name, or nil.
func (c *Catalogue) FindStop(name string) *Stop {
	id, ok := c.stopByName[name]
	if !ok {
		return nil
	}
	return &c.stops[id]
}

// FindBus returns the bus with the given name, or nil.
func (c *Catalogue) FindBus(name string) *Bus {
	idx, ok := c.busByName[name]
	if !ok {
		return nil
	}
	return &c.buses[idx]
}

// Stop returns the stop with the given id. The id must come from this catalogue.
func (c *Catalogue) Stop(id StopID) Stop {
	return c.stops[id]
}

func (c *Catalogue) StopCount() int {
	return len(c.stops)
}

func (c *Catalogue) BusCount() int {
	return len(c.buses)
}

// Stops returns all stops in insertion order.
func (c *Catalogue) Stops() []Stop {
	out := make([]Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

// StopNames returns stop names in insertion order.
func (c *Catalogue) StopNames() []string {
	names := make([]string, len(c.stops))
	for i, s := range c.stops {
		names[i] = s.Name
	}
	return names
}

// AllBuses returns every bus name in lexicographic order.
func (c *Catalogue) AllBuses() []string {
	names := make([]string, 0, len(c.buses))
	for _, b := range c.buses {
		names = append(names, b.Name)
	}
	sort.Strings(names)
	return names
}

// Buses returns every bus ordered by name.
func (c *Catalogue) Buses() []Bus {
	names := c.AllBuses()
	out := make([]Bus, 0, len(names))
	for _, name := range names {
		out = append(out, c.buses[c.busByName[name]])
	}
	return out
}

// BusInfo returns statistics for the named bus, or nil if there is no such
// bus. Consecutive stops without a known distance are left out of both the
// road and the geographic length.
func (c *Catalogue) BusInfo(name string) (*BusInfo, error) {
	bus := c.FindBus(name)
	if bus == nil {
		return nil, nil
	}

	route := bus.Route()
	unique := make(map[StopID]struct{}, len(bus.Stops))
	for _, id := range bus.Stops {
		unique[id] = struct{}{}
	}

	info := &BusInfo{
		StopCount:       len(route),
		UniqueStopCount: len(unique),
	}

	var geoLength float64
	for i := 1; i < len(route); i++ {
		d, err := c.SegmentDistance(route[i-1], route[i])
		if err != nil {
			continue
		}
		info.RouteLength += d
		geoLength += geo.Distance(c.stops[route[i-1]].Coordinates, c.stops[route[i]].Coordinates)
	}

	if geoLength == 0 {
		return info, fmt.Errorf("bus %q: %w", name, ErrDegenerateRoute)
	}
	info.Curvature = float64(info.RouteLength) / geoLength
	return info, nil
}

// StopInfo returns the buses serving the named stop, or nil if there is no
// such stop.
func (c *Catalogue) StopInfo(name string) *StopInfo {
	id, ok := c.stopByName[name]
	if !ok {
		return nil
	}
	buses := make([]string, 0, len(c.stopToBuses[id]))
	for bus := range c.stopToBuses[id] {
		buses = append(buses, bus)
	}
	sort.Strings(buses)
	return &StopInfo{Buses: buses}
}

// Finalize closes the catalogue for writing and returns its read-only view.
// Calling it again returns an equivalent view.
func (c *Catalogue) Finalize() *Finalized {
	c.finalized = true
	return &Finalized{c: c}
}

func (c *Catalogue) validStop(id StopID) bool {
	return id >= 0 && int(id) < len(c.stops)
}

func (c *Catalogue) stopName(id StopID) string {
	if !c.validStop(id) {
		return fmt.Sprintf("#%d", id)
	}
	return c.stops[id].Name
}
