// Package router turns a finalized catalogue into a time-weighted graph and
// answers "how do I get from stop X to stop Y" queries over it.
//
// Every stop owns two vertices: a waiting vertex where a traveler arrives and
// a boarding vertex reached after paying the wait time. Ride edges go from a
// boarding vertex to the waiting vertex of any later stop on the same bus, so
// the wait is charged once per boarding no matter which bus is taken.
package router

import (
	"errors"
	"fmt"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/graph"
)

var ErrUnknownStop = errors.New("unknown stop")

// Settings are the routing parameters. BusVelocity is in meters per minute,
// so edge weights and itinerary times are in minutes.
type Settings struct {
	BusWaitTime float64
	BusVelocity float64
}

type ActivityType string

const (
	ActivityWait ActivityType = "Wait"
	ActivityBus  ActivityType = "Bus"
)

// Activity is one step of an itinerary. StopName is set for waits; BusName
// and SpanCount for rides.
type Activity struct {
	Type      ActivityType
	StopName  string
	BusName   string
	SpanCount int
	Time      float64
}

// Itinerary is a sequence of activities and their total duration.
type Itinerary struct {
	Items     []Activity
	TotalTime float64
}

type edgeActivity struct {
	kind ActivityType
	stop catalogue.StopID
	bus  string
	span int
}

// Router owns the routing graph and its search engine. It is immutable after
// New and safe for concurrent queries.
type Router struct {
	catalogue  *catalogue.Finalized
	settings   Settings
	graph      *graph.DirectedWeightedGraph
	engine     *graph.Router
	activities []edgeActivity
}

// New builds the routing graph for cat and prepares the search engine.
// A bus segment without a known road distance aborts the build.
func New(cat *catalogue.Finalized, settings Settings) (*Router, error) {
	if settings.BusWaitTime < 0 {
		return nil, fmt.Errorf("%w: bus wait time %v", graph.ErrInvalidWeight, settings.BusWaitTime)
	}
	if settings.BusVelocity <= 0 {
		return nil, fmt.Errorf("%w: bus velocity %v", graph.ErrInvalidWeight, settings.BusVelocity)
	}

	r := &Router{
		catalogue: cat,
		settings:  settings,
		graph:     graph.New(2 * cat.StopCount()),
	}
	if err := r.buildGraph(); err != nil {
		return nil, err
	}

	engine, err := graph.NewRouter(r.graph)
	if err != nil {
		return nil, err
	}
	r.engine = engine
	return r, nil
}

func waitingVertex(id catalogue.StopID) graph.VertexID {
	return graph.VertexID(2 * id)
}

func boardingVertex(id catalogue.StopID) graph.VertexID {
	return graph.VertexID(2*id + 1)
}

func (r *Router) buildGraph() error {
	for _, stop := range r.catalogue.Stops() {
		if err := r.addEdge(graph.Edge{
			From:   waitingVertex(stop.ID),
			To:     boardingVertex(stop.ID),
			Weight: r.settings.BusWaitTime,
		}, edgeActivity{kind: ActivityWait, stop: stop.ID}); err != nil {
			return err
		}
	}

	for _, bus := range r.catalogue.Buses() {
		route := bus.Route()
		if bus.IsRoundtrip {
			if err := r.addBusEdges(bus.Name, route); err != nil {
				return err
			}
			continue
		}
		// outbound and inbound halves share the turnaround stop
		terminal := bus.Terminal()
		if err := r.addBusEdges(bus.Name, route[:terminal+1]); err != nil {
			return err
		}
		if err := r.addBusEdges(bus.Name, route[terminal:]); err != nil {
			return err
		}
	}
	return nil
}

// addBusEdges links every stop of one traversal to every later stop of it.
func (r *Router) addBusEdges(busName string, stops []catalogue.StopID) error {
	for i := 0; i < len(stops); i++ {
		distance := 0
		for j := i + 1; j < len(stops); j++ {
			d, err := r.catalogue.SegmentDistance(stops[j-1], stops[j])
			if err != nil {
				return fmt.Errorf("bus %q: %w", busName, err)
			}
			distance += d
			if stops[i] == stops[j] {
				continue
			}
			if err := r.addEdge(graph.Edge{
				From:   boardingVertex(stops[i]),
				To:     waitingVertex(stops[j]),
				Weight: float64(distance) / r.settings.BusVelocity,
			}, edgeActivity{kind: ActivityBus, bus: busName, span: j - i}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) addEdge(e graph.Edge, activity edgeActivity) error {
	if _, err := r.graph.AddEdge(e); err != nil {
		return err
	}
	r.activities = append(r.activities, activity)
	return nil
}

// GetItinerary returns the fastest way from one stop to another, or nil
// when no bus connects them.
func (r *Router) GetItinerary(from, to string) (*Itinerary, error) {
	fromStop := r.catalogue.FindStop(from)
	if fromStop == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, from)
	}
	toStop := r.catalogue.FindStop(to)
	if toStop == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStop, to)
	}

	route, ok := r.engine.BuildRoute(waitingVertex(fromStop.ID), waitingVertex(toStop.ID))
	if !ok {
		return nil, nil
	}

	itinerary := &Itinerary{
		Items:     make([]Activity, 0, len(route.Edges)),
		TotalTime: route.Weight,
	}
	for _, id := range route.Edges {
		itinerary.Items = append(itinerary.Items, r.describe(id))
	}
	return itinerary, nil
}

func (r *Router) describe(id graph.EdgeID) Activity {
	meta := r.activities[id]
	edge := r.graph.Edge(id)
	if meta.kind == ActivityWait {
		return Activity{
			Type:     ActivityWait,
			StopName: r.catalogue.Stop(meta.stop).Name,
			Time:     edge.Weight,
		}
	}
	return Activity{
		Type:      ActivityBus,
		BusName:   meta.bus,
		SpanCount: meta.span,
		Time:      edge.Weight,
	}
}

// Graph exposes the routing graph for inspection.
func (r *Router) Graph() *graph.DirectedWeightedGraph {
	return r.graph
}

func (r *Router) Settings() Settings {
	return r.settings
}
