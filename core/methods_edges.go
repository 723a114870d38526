// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdgeBetween/GetEdge/Edges/
//       EdgeCount/Degree/Neighbors/FilterEdges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/dkovalov/roadskeleton/geom2d"
)

const edgeIDPrefix = 'e'

// AddEdge inserts an edge between the nodes at geometry's two endpoints
// (rounded to geom2d.Precision), ensuring both nodes exist (radius 0.1 if
// new — callers typically create nodes with a real radius via AddNode
// first). Rejects self-loops where the two endpoints round to the same
// node key (spec §3 invariant), and degenerate geometry with fewer than
// two points.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(geometry geom2d.LineString) (string, error) {
	if len(geometry) < 2 {
		return "", ErrDegenerateGeo
	}
	from := g.AddNode(geometry[0], 0.1)
	to := g.AddNode(geometry[len(geometry)-1], 0.1)
	if from == to {
		return "", ErrSelfLoop
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := nextEdgeID(g)
	e := &Edge{
		ID:       eid,
		From:     from,
		To:       to,
		Geometry: geometry,
		Length:   geom2d.Length(geometry),
	}
	g.edges[eid] = e
	g.ensureAdjacencyLocked(from)
	g.ensureAdjacencyLocked(to)
	g.adjacency[from][eid] = struct{}{}
	g.adjacency[to][eid] = struct{}{}

	return eid, nil
}

// HasEdgeBetween reports whether at least one edge directly connects a and
// b, for callers that want simple-graph semantics (e.g. parallel-edge
// separation checking before re-adding a shifted edge).
func (g *Graph) HasEdgeBetween(a, b string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid := range g.adjacency[a] {
		if e, ok := g.edges[eid]; ok && (e.To == b || e.From == b) {
			return true
		}
	}
	return false
}

// RemoveEdge deletes one edge by ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], eid)
	delete(g.adjacency[e.To], eid)
	return nil
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// Edges returns all edges sorted by ID asc (deterministic iteration order,
// per spec §5's "enumeration order of the underlying container").
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// Degree returns the number of edges incident to the node at key (a self-
// loop, were one ever present, would count twice; none are ever added).
func (g *Graph) Degree(key string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.adjacency[key])
}

// Neighbors returns every edge incident to the node at key, sorted by
// edge ID for deterministic traversal order.
func (g *Graph) Neighbors(key string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.adjacency[key]))
	for eid := range g.adjacency[key] {
		if e, ok := g.edges[eid]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OtherEnd returns the node key at the opposite end of e from key.
func (e *Edge) OtherEnd(key string) string {
	if e.From == key {
		return e.To
	}
	return e.From
}

// FilterEdges removes every edge failing pred.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			delete(g.edges, eid)
			delete(g.adjacency[e.From], eid)
			delete(g.adjacency[e.To], eid)
		}
	}
}

// ensureAdjacencyLocked creates the adjacency bucket for key if absent.
// Caller must hold muEdgeAdj.
func (g *Graph) ensureAdjacencyLocked(key string) {
	if g.adjacency[key] == nil {
		g.adjacency[key] = make(map[string]struct{})
	}
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)
	return string(buf)
}
