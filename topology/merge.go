package topology

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

// MergeIntersections contracts short bridge edges between two junction
// nodes (degree>=3 on both ends) into a single merged node at their
// midpoint, repeated until no qualifying bridge remains (spec §4.11
// "IntersectionMerger"). A bridge is vetoed — left alone — when it sits
// in a parallel corridor: a neighbor direction on the u side and one on
// the v side agree within intersectionParallelAngleDeg, meaning
// contracting it would collapse two genuinely separate parallel roads
// into one. Grounded on
// topology/strategies.py's IntersectionMerger._should_preserve_parallel_corridor.
func MergeIntersections(lines []geom2d.LineString, thresholdM, parallelAngleDeg float64) []geom2d.LineString {
	if len(lines) == 0 {
		return lines
	}
	g := core.NewGraph(core.WithMultigraph())
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		g.AddEdge(ln)
	}

	for {
		eid, u, v, ok := findMergeCandidate(g, thresholdM, parallelAngleDeg)
		if !ok {
			break
		}
		mergeBridge(g, eid, u, v)
	}

	g.RemoveIsolatedNodes()
	out := make([]geom2d.LineString, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.Geometry)
	}
	return out
}

func findMergeCandidate(g *core.Graph, thresholdM, parallelAngleDeg float64) (eid, u, v string, ok bool) {
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if g.Degree(e.From) < 3 || g.Degree(e.To) < 3 {
			continue
		}
		if e.Length > thresholdM {
			continue
		}
		if shouldPreserveParallelCorridor(g, e, parallelAngleDeg) {
			continue
		}
		return e.ID, e.From, e.To, true
	}
	return "", "", "", false
}

func mergeBridge(g *core.Graph, bridgeID, u, v string) {
	un, errU := g.GetNode(u)
	vn, errV := g.GetNode(v)
	_ = g.RemoveEdge(bridgeID)
	if errU != nil || errV != nil {
		return
	}
	w := geom2d.Point{X: (un.X + vn.X) / 2, Y: (un.Y + vn.Y) / 2}.Round(geom2d.Precision)

	touched := map[string]*core.Edge{}
	for _, e := range g.Neighbors(u) {
		touched[e.ID] = e
	}
	for _, e := range g.Neighbors(v) {
		touched[e.ID] = e
	}
	for _, e := range touched {
		newGeom := rewriteEndpoints(e.Geometry, u, v, w)
		_ = g.RemoveEdge(e.ID)
		if _, err := g.AddEdge(newGeom); err != nil {
			continue
		}
	}
	_ = g.RemoveNode(u)
	_ = g.RemoveNode(v)
}

func rewriteEndpoints(geom geom2d.LineString, u, v string, w geom2d.Point) geom2d.LineString {
	out := append(geom2d.LineString{}, geom...)
	if key := core.NodeKey(out[0]); key == u || key == v {
		out[0] = w
	}
	last := len(out) - 1
	if key := core.NodeKey(out[last]); key == u || key == v {
		out[last] = w
	}
	return out
}

func shouldPreserveParallelCorridor(g *core.Graph, bridge *core.Edge, parallelAngleDeg float64) bool {
	uDirs := collectNeighborDirections(g, bridge.From, bridge.ID)
	vDirs := collectNeighborDirections(g, bridge.To, bridge.ID)
	for _, du := range uDirs {
		for _, dv := range vDirs {
			if acosUnsignedDeg(du, dv) <= parallelAngleDeg {
				return true
			}
		}
	}
	return false
}

// collectNeighborDirections returns, for every edge incident to node other
// than excludeEdgeID, the unit direction from node toward that edge's
// second-from-end vertex on node's side (topology/strategies.py's
// _collect_neighbor_directions).
func collectNeighborDirections(g *core.Graph, node, excludeEdgeID string) []geom2d.Point {
	n, err := g.GetNode(node)
	if err != nil {
		return nil
	}
	nPt := n.Point()
	var dirs []geom2d.Point
	for _, e := range g.Neighbors(node) {
		if e.ID == excludeEdgeID {
			continue
		}
		geom := e.Geometry
		if len(geom) < 2 {
			continue
		}
		var other geom2d.Point
		if e.From == node {
			other = geom[1]
		} else {
			other = geom[len(geom)-2]
		}
		v := other.Sub(nPt)
		if v.Norm() > geom2d.Eps {
			dirs = append(dirs, v.Unit())
		}
	}
	return dirs
}
