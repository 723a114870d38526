// Package skelgraph builds a core.Graph from selected centerline
// candidates and collapses degree-2 chains back down to single edges
// (spec §4.7). Grounded on
// original_source/Service/gis_modules/skeleton/graph_builder.py's
// build_context_aware_graph and merge_degree_2_nodes.
package skelgraph

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

const minRadius = 0.1

// Build adds every candidate line as an edge of a fresh graph, skipping
// empty lines and lines whose endpoints round to the same node (a
// self-loop). Each endpoint's radius is the distance from that point to
// boundary's boundary ring, clamped to minRadius, set only the first time
// a node is created (spec §4.7: "if not already set").
func Build(lines []geom2d.LineString, boundary geom2d.MultiPolygon) *core.Graph {
	g := core.NewGraph()
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		start, end := line[0], line[len(line)-1]
		g.AddNode(start, radiusAt(start, boundary))
		g.AddNode(end, radiusAt(end, boundary))
		if _, err := g.AddEdge(line); err != nil {
			continue
		}
	}
	return g
}

func radiusAt(p geom2d.Point, boundary geom2d.MultiPolygon) float64 {
	d := geom2d.DistanceToBoundaryMulti(p, boundary)
	if d < minRadius {
		return minRadius
	}
	return d
}

// MergeDegree2Nodes repeatedly collapses every node of degree exactly 2
// into its two incident edges, splicing the geometries into one, until no
// degree-2 node remains. A node whose two neighbors are the same node (the
// merge would create a self-loop) is left alone.
func MergeDegree2Nodes(g *core.Graph) {
	for {
		merged := 0
		for _, n := range g.Nodes() {
			if !g.HasNode(n.Key) || g.Degree(n.Key) != 2 {
				continue
			}
			nbrs := g.Neighbors(n.Key)
			if len(nbrs) != 2 {
				continue
			}
			joined, ok := joinAtNode(nbrs[0], nbrs[1], n.Key)
			if !ok {
				continue
			}
			if core.NodeKey(joined[0]) == core.NodeKey(joined[len(joined)-1]) {
				continue
			}
			if err := g.RemoveNode(n.Key); err != nil {
				continue
			}
			if _, err := g.AddEdge(joined); err != nil {
				continue
			}
			merged++
		}
		if merged == 0 {
			break
		}
	}
}

// joinAtNode orients e1 and e2 so both run away from node and splices them
// into one polyline, dropping the duplicated joint point.
func joinAtNode(e1, e2 *core.Edge, node string) (geom2d.LineString, bool) {
	g1 := orientFromNode(e1, node)
	g2 := orientFromNode(e2, node)
	if g1 == nil || g2 == nil {
		return nil, false
	}
	reversed := reverseLine(g1)
	out := append(geom2d.LineString{}, reversed...)
	out = append(out, g2[1:]...)
	return out, true
}

// orientFromNode returns e's geometry starting at node, reversed if needed.
func orientFromNode(e *core.Edge, node string) geom2d.LineString {
	geom := e.Geometry
	if len(geom) < 2 {
		return nil
	}
	if e.From == node {
		return geom
	}
	if e.To == node {
		return reverseLine(geom)
	}
	return nil
}

func reverseLine(ls geom2d.LineString) geom2d.LineString {
	out := make(geom2d.LineString, len(ls))
	for i, p := range ls {
		out[len(ls)-1-i] = p
	}
	return out
}
