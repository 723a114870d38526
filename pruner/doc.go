// Package pruner implements the four skeleton-graph pruning passes (spec
// §4.8): RatioPruner, BoundaryNearPruner, ComponentPruner, SpurPruner.
// Grounded on original_source/Service/gis_modules/skeleton/pruners.py.
package pruner

import "github.com/dkovalov/roadskeleton/core"

const minRadius = 0.1

// leafPath is the traced chain from a degree-1 leaf to the nearest
// junction (degree >= 3) or to a dead end reached with no further
// unvisited neighbor, mirroring pruners.py's _EdgePath/_trace_leaf_to_
// junction.
type leafPath struct {
	nodes          []string
	edges          []string
	totalLength    float64
	junction       string
	junctionRadius float64
}

func traceLeafToJunction(g *core.Graph, leaf string) (leafPath, bool) {
	visited := map[string]bool{leaf: true}
	nodes := []string{leaf}
	var edges []string
	var total float64
	current := leaf

	for {
		var next *core.Edge
		for _, e := range g.Neighbors(current) {
			if other := e.OtherEnd(current); !visited[other] {
				next = e
				break
			}
		}
		if next == nil {
			return leafPath{nodes: nodes, edges: edges, totalLength: total, junction: current, junctionRadius: nodeRadius(g, current)}, true
		}
		total += next.Length
		edges = append(edges, next.ID)
		current = next.OtherEnd(current)
		visited[current] = true
		nodes = append(nodes, current)
		if g.Degree(current) >= 3 {
			return leafPath{nodes: nodes, edges: edges, totalLength: total, junction: current, junctionRadius: nodeRadius(g, current)}, true
		}
	}
}

func nodeRadius(g *core.Graph, key string) float64 {
	n, err := g.GetNode(key)
	if err != nil {
		return minRadius
	}
	return n.Radius
}

func leavesOf(g *core.Graph) []string {
	var out []string
	for _, n := range g.Nodes() {
		if g.Degree(n.Key) == 1 {
			out = append(out, n.Key)
		}
	}
	return out
}

func removeEdgeSet(g *core.Graph, edgeIDs map[string]bool) {
	for eid := range edgeIDs {
		_ = g.RemoveEdge(eid)
	}
}
