package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"transportcatalogue.dev/internal/app"
	"transportcatalogue.dev/internal/graph"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// dataTypes lists the views of the debug page in navigation order.
var dataTypes = []string{"stops", "buses", "distances", "graph", "routing", "render"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

// WebUI serves read-only dumps of the loaded network for debugging.
type WebUI struct {
	*app.Application
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: dataTypes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type graphSummary struct {
	Vertices int
	Edges    []graph.Edge
}

type distance struct {
	From, To string
	Meters   int
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	var (
		data  interface{}
		title string
	)

	switch r.URL.Query().Get("dataType") {
	case "stops":
		data = webUI.Catalogue.Stops()
		title = "Catalogue - Stops"
	case "buses":
		data = webUI.Catalogue.Buses()
		title = "Catalogue - Buses"
	case "distances":
		data = webUI.segmentDistances()
		title = "Catalogue - Road Distances Along Routes"
	case "graph":
		g := webUI.Router.Graph()
		summary := graphSummary{Vertices: g.VertexCount(), Edges: make([]graph.Edge, g.EdgeCount())}
		for i := range summary.Edges {
			summary.Edges[i] = g.Edge(graph.EdgeID(i))
		}
		data = summary
		title = "Router - Graph"
	case "routing":
		data = webUI.Router.Settings()
		title = "Router - Settings"
	case "render":
		data = webUI.Renderer.Settings()
		title = "Renderer - Settings"
	default:
		data = map[string]interface{}{
			"error":     "Please use one of the data types linked above.",
			"stopCount": webUI.Catalogue.StopCount(),
			"busCount":  webUI.Catalogue.BusCount(),
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

// segmentDistances lists the road distance of every consecutive pair of
// stops a bus visits, once per pair.
func (webUI *WebUI) segmentDistances() []distance {
	seen := make(map[[2]string]bool)
	var out []distance
	for _, bus := range webUI.Catalogue.Buses() {
		route := bus.Route()
		for i := 1; i < len(route); i++ {
			from, to := webUI.Catalogue.Stop(route[i-1]), webUI.Catalogue.Stop(route[i])
			key := [2]string{from.Name, to.Name}
			if seen[key] {
				continue
			}
			seen[key] = true
			meters, err := webUI.Catalogue.SegmentDistance(route[i-1], route[i])
			if err != nil {
				meters = -1
			}
			out = append(out, distance{From: from.Name, To: to.Name, Meters: meters})
		}
	}
	return out
}
