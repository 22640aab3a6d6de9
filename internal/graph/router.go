package graph

import (
	"container/heap"
	"fmt"
	"math"
)

// RouteInfo describes one shortest path.
type RouteInfo struct {
	Weight float64
	Edges  []EdgeID
}

// Router answers shortest-path queries over a graph that no longer changes.
// It holds no per-query state, so one Router may serve concurrent callers.
type Router struct {
	graph          *DirectedWeightedGraph
	edges          []Edge
	incident       [][]EdgeID
	expansionLimit int
}

type RouterOption func(*Router)

// WithExpansionLimit caps the number of vertices BuildRouteLimited may settle.
func WithExpansionLimit(n int) RouterOption {
	return func(r *Router) {
		r.expansionLimit = n
	}
}

// NewRouter validates the graph's weights and snapshots its adjacency.
// Edges added to the graph afterwards are not seen by the router.
func NewRouter(g *DirectedWeightedGraph, opts ...RouterOption) (*Router, error) {
	for id, e := range g.edges {
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("%w: edge %d has weight %v", ErrInvalidWeight, id, e.Weight)
		}
	}

	r := &Router{
		graph:    g,
		edges:    append([]Edge(nil), g.edges...),
		incident: make([][]EdgeID, len(g.incident)),
	}
	for v, ids := range g.incident {
		r.incident[v] = append([]EdgeID(nil), ids...)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Graph returns the graph the router was built from.
func (r *Router) Graph() *DirectedWeightedGraph {
	return r.graph
}

// BuildRoute returns a minimum-weight path from one vertex to another, or
// false when the target cannot be reached or either vertex is unknown.
func (r *Router) BuildRoute(from, to VertexID) (*RouteInfo, bool) {
	route, err := r.search(from, to, 0)
	if err != nil || route == nil {
		return nil, false
	}
	return route, true
}

// BuildRouteLimited is BuildRoute honoring the router's expansion limit.
// It returns nil, nil when the target is unreachable.
func (r *Router) BuildRouteLimited(from, to VertexID) (*RouteInfo, error) {
	return r.search(from, to, r.expansionLimit)
}

func (r *Router) search(from, to VertexID, limit int) (*RouteInfo, error) {
	if !r.hasVertex(from) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, from)
	}
	if !r.hasVertex(to) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, to)
	}
	if from == to {
		return &RouteInfo{Weight: 0, Edges: []EdgeID{}}, nil
	}

	n := len(r.incident)
	dist := make([]float64, n)
	prevEdge := make([]EdgeID, n)
	settled := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prevEdge[i] = -1
	}
	dist[from] = 0

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{vertex: from, priority: 0})

	expanded := 0
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.vertex
		if settled[current] {
			continue
		}
		settled[current] = true
		if current == to {
			break
		}

		expanded++
		if limit > 0 && expanded > limit {
			return nil, fmt.Errorf("%w: settled %d vertices", ErrSearchBudgetExceeded, limit)
		}

		for _, id := range r.incident[current] {
			e := r.edges[id]
			if settled[e.To] {
				continue
			}
			tentative := dist[current] + e.Weight
			if tentative < dist[e.To] {
				dist[e.To] = tentative
				prevEdge[e.To] = id
				heap.Push(pq, &pqItem{vertex: e.To, priority: tentative})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return nil, nil
	}
	return &RouteInfo{Weight: dist[to], Edges: r.reconstructPath(prevEdge, to)}, nil
}

func (r *Router) reconstructPath(prevEdge []EdgeID, to VertexID) []EdgeID {
	var path []EdgeID
	for v := to; prevEdge[v] != -1; v = r.edges[prevEdge[v]].From {
		path = append(path, prevEdge[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (r *Router) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(r.incident)
}

type pqItem struct {
	vertex   VertexID
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[0 : n-1]
	return item
}
