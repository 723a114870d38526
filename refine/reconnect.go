package refine

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// ReconnectDirectionalBreaks links pairs of degree-1 endpoints within
// reconnect_search_radius_m whose outward headings agree within
// reconnect_angle_deg, adding the connecting edge only if it mostly lies
// inside the stabilized boundary, or entirely within a small buffer of it
// (spec §4.9 "Reconnect").
func ReconnectDirectionalBreaks(g *core.Graph, boundary geom2d.MultiPolygon, p policy.SkeletonPolicy) {
	buffered := bufferAll(boundary, p.ReconnectBoundaryBufM)

	var leaves []string
	for _, n := range g.Nodes() {
		if g.Degree(n.Key) == 1 {
			leaves = append(leaves, n.Key)
		}
	}

	for i, a := range leaves {
		for _, b := range leaves[i+1:] {
			na, errA := g.GetNode(a)
			nb, errB := g.GetNode(b)
			if errA != nil || errB != nil {
				continue
			}
			if na.Point().Dist(nb.Point()) > p.ReconnectSearchRadiusM {
				continue
			}
			ha, ok1 := endpointHeading(g, a)
			hb, ok2 := endpointHeading(g, b)
			if !ok1 || !ok2 {
				continue
			}
			if angleBetweenDeg(ha, hb) > p.ReconnectAngleDeg {
				continue
			}
			if g.HasEdgeBetween(a, b) {
				continue
			}

			seg := geom2d.LineString{na.Point(), nb.Point()}
			insideRatio := insideRatioMulti(seg, boundary)
			entirelyBuffered := insideRatioMulti(seg, buffered) >= 1-geom2d.Eps
			if insideRatio >= p.ReconnectMinInsideRatio || entirelyBuffered {
				g.AddEdge(seg)
			}
		}
	}
}

// endpointHeading returns the unit vector pointing from node's sole
// neighbor to node, i.e. the direction the path exits the graph at that
// leaf.
func endpointHeading(g *core.Graph, node string) (geom2d.Point, bool) {
	nbrs := g.Neighbors(node)
	if len(nbrs) == 0 {
		return geom2d.Point{}, false
	}
	other := nbrs[0].OtherEnd(node)
	n, err := g.GetNode(node)
	if err != nil {
		return geom2d.Point{}, false
	}
	o, err := g.GetNode(other)
	if err != nil {
		return geom2d.Point{}, false
	}
	v := n.Point().Sub(o.Point())
	if v.Norm() < geom2d.Eps {
		return geom2d.Point{}, false
	}
	return v.Unit(), true
}
