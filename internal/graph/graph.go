// Package graph provides a directed weighted graph and a Dijkstra router
// over it.
package graph

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWeight        = errors.New("edge weight must be finite and non-negative")
	ErrUnknownVertex        = errors.New("unknown vertex")
	ErrSearchBudgetExceeded = errors.New("search budget exceeded")
)

type (
	VertexID int
	EdgeID   int
)

// Edge is a directed edge between two vertices.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// DirectedWeightedGraph stores edges in insertion order; an edge's id is its
// position. Vertices are the integers [0, VertexCount).
type DirectedWeightedGraph struct {
	edges    []Edge
	incident [][]EdgeID
}

func New(vertexCount int) *DirectedWeightedGraph {
	return &DirectedWeightedGraph{
		incident: make([][]EdgeID, vertexCount),
	}
}

// AddEdge appends an edge and returns its id.
func (g *DirectedWeightedGraph) AddEdge(e Edge) (EdgeID, error) {
	if !g.hasVertex(e.From) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, e.From)
	}
	if !g.hasVertex(e.To) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVertex, e.To)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incident[e.From] = append(g.incident[e.From], id)
	return id, nil
}

func (g *DirectedWeightedGraph) VertexCount() int {
	return len(g.incident)
}

func (g *DirectedWeightedGraph) EdgeCount() int {
	return len(g.edges)
}

// Edge returns the edge with the given id. The id must come from AddEdge.
func (g *DirectedWeightedGraph) Edge(id EdgeID) Edge {
	return g.edges[id]
}

// IncidentEdges returns the ids of the edges leaving v.
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) []EdgeID {
	if !g.hasVertex(v) {
		return nil
	}
	return g.incident[v]
}

func (g *DirectedWeightedGraph) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.incident)
}
