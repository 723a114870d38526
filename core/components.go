package core

import "sort"

// Component is one connected component of the graph: its node keys and
// cached aggregate stats used by the boundary-near and component pruners
// (spec §4.8.2, §4.8.3).
type Component struct {
	NodeKeys  []string
	TotalLen  float64
	MaxRadius float64
	MaxDegree int
}

// ConnectedComponents partitions the graph's nodes into connected
// components via BFS over the adjacency structure, in deterministic node-
// key order.
func (g *Graph) ConnectedComponents() []Component {
	nodes := g.Nodes()
	visited := make(map[string]bool, len(nodes))
	var comps []Component

	for _, n := range nodes {
		if visited[n.Key] {
			continue
		}
		var keys []string
		queue := []string{n.Key}
		visited[n.Key] = true
		var totalLen float64
		maxRadius := 0.0
		maxDegree := 0
		seenEdge := make(map[string]bool)

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			keys = append(keys, cur)
			if node, err := g.GetNode(cur); err == nil && node.Radius > maxRadius {
				maxRadius = node.Radius
			}
			nbrs := g.Neighbors(cur)
			if len(nbrs) > maxDegree {
				maxDegree = len(nbrs)
			}
			for _, e := range nbrs {
				if !seenEdge[e.ID] {
					seenEdge[e.ID] = true
					totalLen += e.Length
				}
				other := e.OtherEnd(cur)
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		sort.Strings(keys)
		comps = append(comps, Component{NodeKeys: keys, TotalLen: totalLen, MaxRadius: maxRadius, MaxDegree: maxDegree})
	}
	return comps
}

// ComponentOf returns the component containing nodeKey, scanning
// ConnectedComponents. Callers that need to repeatedly look up a node's
// component should build a key→component index once via
// ConnectedComponents instead of calling this in a loop.
func (g *Graph) ComponentOf(nodeKey string) (Component, bool) {
	for _, c := range g.ConnectedComponents() {
		for _, k := range c.NodeKeys {
			if k == nodeKey {
				return c, true
			}
		}
	}
	return Component{}, false
}
