// Package renderer draws the bus network as an SVG map.
package renderer

import (
	"errors"
	"io"
	"sort"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/geo"
)

var ErrEmptyPalette = errors.New("color palette is empty")

// Source is the read-only view of the catalogue the renderer needs.
type Source interface {
	Buses() []catalogue.Bus
	Stop(id catalogue.StopID) catalogue.Stop
}

type MapRenderer struct {
	settings Settings
}

func New(settings Settings) (*MapRenderer, error) {
	if len(settings.ColorPalette) == 0 {
		return nil, ErrEmptyPalette
	}
	return &MapRenderer{settings: settings}, nil
}

func (r *MapRenderer) Settings() Settings {
	return r.settings
}

type renderedBus struct {
	name        string
	isRoundtrip bool
	route       []catalogue.Stop
	terminal    catalogue.Stop
}

// Render writes the SVG map of every bus with at least one stop. Layers are
// drawn bottom to top: route lines, bus names, stop circles, stop names.
func (r *MapRenderer) Render(w io.Writer, src Source) error {
	buses := r.collectBuses(src)

	var points []geo.Coordinates
	for _, bus := range buses {
		for _, stop := range bus.route {
			points = append(points, stop.Coordinates)
		}
	}
	projector := NewSphereProjector(points, r.settings.Width, r.settings.Height, r.settings.Padding)

	doc := &document{}
	r.addRouteLines(doc, buses, projector)
	r.addBusNames(doc, buses, projector)
	stops := uniqueStopsByName(buses)
	r.addStopCircles(doc, stops, projector)
	r.addStopNames(doc, stops, projector)
	return doc.writeTo(w)
}

func (r *MapRenderer) collectBuses(src Source) []renderedBus {
	var out []renderedBus
	for _, bus := range src.Buses() {
		if len(bus.Stops) == 0 {
			continue
		}
		rb := renderedBus{name: bus.Name, isRoundtrip: bus.IsRoundtrip}
		for _, id := range bus.Route() {
			rb.route = append(rb.route, src.Stop(id))
		}
		rb.terminal = rb.route[bus.Terminal()]
		out = append(out, rb)
	}
	return out
}

func (r *MapRenderer) addRouteLines(doc *document, buses []renderedBus, projector SphereProjector) {
	for i, bus := range buses {
		line := polyline{props: roundStroke(NoneColor, r.settings.paletteColor(i), r.settings.LineWidth)}
		for _, stop := range bus.route {
			line.points = append(line.points, projector.Project(stop.Coordinates))
		}
		doc.add(line)
	}
}

func (r *MapRenderer) addBusNames(doc *document, buses []renderedBus, projector SphereProjector) {
	for i, bus := range buses {
		color := r.settings.paletteColor(i)
		first := bus.route[0]
		r.addBusLabel(doc, bus.name, projector.Project(first.Coordinates), color)
		if !bus.isRoundtrip && bus.terminal.Name != first.Name {
			r.addBusLabel(doc, bus.name, projector.Project(bus.terminal.Coordinates), color)
		}
	}
}

func (r *MapRenderer) addBusLabel(doc *document, name string, at Point, color Color) {
	base := text{
		position:   at,
		offset:     Point{X: r.settings.BusLabelOffset[0], Y: r.settings.BusLabelOffset[1]},
		fontSize:   r.settings.BusLabelFontSize,
		fontFamily: "Verdana",
		fontWeight: "bold",
		data:       name,
	}
	underlayer := base
	underlayer.props = roundStroke(r.settings.UnderlayerColor, r.settings.UnderlayerColor, r.settings.UnderlayerWidth)
	label := base
	label.props = fillOnly(color)
	doc.add(underlayer)
	doc.add(label)
}

func uniqueStopsByName(buses []renderedBus) []catalogue.Stop {
	seen := make(map[catalogue.StopID]struct{})
	var stops []catalogue.Stop
	for _, bus := range buses {
		for _, stop := range bus.route {
			if _, ok := seen[stop.ID]; ok {
				continue
			}
			seen[stop.ID] = struct{}{}
			stops = append(stops, stop)
		}
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].Name < stops[j].Name })
	return stops
}

func (r *MapRenderer) addStopCircles(doc *document, stops []catalogue.Stop, projector SphereProjector) {
	for _, stop := range stops {
		doc.add(circle{
			center: projector.Project(stop.Coordinates),
			radius: r.settings.StopRadius,
			props:  fillOnly(NamedColor("white")),
		})
	}
}

func (r *MapRenderer) addStopNames(doc *document, stops []catalogue.Stop, projector SphereProjector) {
	for _, stop := range stops {
		base := text{
			position:   projector.Project(stop.Coordinates),
			offset:     Point{X: r.settings.StopLabelOffset[0], Y: r.settings.StopLabelOffset[1]},
			fontSize:   r.settings.StopLabelFontSize,
			fontFamily: "Verdana",
			data:       stop.Name,
		}
		underlayer := base
		underlayer.props = roundStroke(r.settings.UnderlayerColor, r.settings.UnderlayerColor, r.settings.UnderlayerWidth)
		label := base
		label.props = fillOnly(NamedColor("black"))
		doc.add(underlayer)
		doc.add(label)
	}
}
