// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/GetNode/Nodes/NodeCount/
//       RemoveNode/SetRadius.
// Determinism:
//   - Nodes() returns nodes sorted by Key asc.
// Concurrency:
//   - Mutations under muNode write lock.
//   - Read queries under muNode read lock.
package core

import (
	"sort"

	"github.com/dkovalov/roadskeleton/geom2d"
)

// AddNode ensures a node exists at p's rounded coordinate and returns its
// key. If the node already exists, radius is left unchanged (set it
// explicitly via SetRadius to update it) — this matches spec §4.7's "if
// not already set" rule for per-endpoint radius.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(p geom2d.Point, radius float64) string {
	key := NodeKey(p)
	r := p.Round(geom2d.Precision)

	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.nodes[key]; !ok {
		g.nodes[key] = &Node{Key: key, X: r.X, Y: r.Y, Radius: radius}
	}
	return key
}

// SetRadius overwrites the radius of an existing node, clamped to the
// invariant minimum of 0.1 (spec §4.7).
func (g *Graph) SetRadius(key string, radius float64) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	n, ok := g.nodes[key]
	if !ok {
		return ErrNodeNotFound
	}
	if radius < 0.1 {
		radius = 0.1
	}
	n.Radius = radius
	return nil
}

// HasNode reports whether key identifies an existing node.
func (g *Graph) HasNode(key string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[key]
	return ok
}

// GetNode returns the node for key, or ErrNodeNotFound.
func (g *Graph) GetNode(key string) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[key]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// Nodes returns all nodes sorted by Key asc (deterministic iteration).
func (g *Graph) Nodes() []*Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// RemoveNode deletes a node and every edge incident to it.
func (g *Graph) RemoveNode(key string) error {
	g.muNode.Lock()
	if _, ok := g.nodes[key]; !ok {
		g.muNode.Unlock()
		return ErrNodeNotFound
	}
	delete(g.nodes, key)
	g.muNode.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if e.From == key || e.To == key {
			delete(g.edges, eid)
			delete(g.adjacency[e.From], eid)
			delete(g.adjacency[e.To], eid)
		}
	}
	delete(g.adjacency, key)
	return nil
}

// RemoveIsolatedNodes deletes every node with zero incident edges and
// returns how many were removed. Used after edge removal passes (spec
// §4.8: "drop isolated nodes").
func (g *Graph) RemoveIsolatedNodes() int {
	degree := make(map[string]int)
	g.muEdgeAdj.RLock()
	for _, e := range g.edges {
		degree[e.From]++
		degree[e.To]++
	}
	g.muEdgeAdj.RUnlock()

	g.muNode.Lock()
	defer g.muNode.Unlock()
	removed := 0
	for key := range g.nodes {
		if degree[key] == 0 {
			delete(g.nodes, key)
			removed++
		}
	}
	return removed
}
