package refine

import (
	"math"

	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// SmoothByDirectionField runs graph_smooth_iterations rounds of: nudge
// every node with >=2 neighbors toward the mean direction of its
// neighbors, rebuild the graph with remapped endpoints (dropping edges
// whose new endpoints coincide), then sliding-window-smooth (first and last
// vertices held fixed) and resample each edge's polyline (spec §4.10). Node radii are not preserved across a
// rebuild — matching the source, which never copies them onto the fresh
// graph it builds each iteration; a later radius lookup on these nodes
// again defaults to the node-radius floor.
func SmoothByDirectionField(g *core.Graph, p policy.SkeletonPolicy) *core.Graph {
	if g.NodeCount() == 0 || g.EdgeCount() == 0 {
		return g
	}
	iterations := p.GraphSmoothIterations
	if iterations < 1 {
		iterations = 1
	}

	cur := g
	for it := 0; it < iterations; it++ {
		newPos := computeSmoothedPositions(cur, p)
		next := core.NewGraph()
		for _, e := range cur.Edges() {
			uOld, err1 := cur.GetNode(e.From)
			vOld, err2 := cur.GetNode(e.To)
			if err1 != nil || err2 != nil {
				continue
			}
			uNew, ok := newPos[e.From]
			if !ok {
				uNew = uOld.Point()
			}
			vNew, ok := newPos[e.To]
			if !ok {
				vNew = vOld.Point()
			}
			if core.NodeKey(uNew) == core.NodeKey(vNew) {
				continue
			}
			morphed := morphEndpoints(e.Geometry, uNew, vNew)
			smoothed := directionalSmoothAndResample(morphed, p)
			if len(smoothed) < 2 {
				continue
			}
			next.AddEdge(smoothed)
		}
		cur = next
	}
	return cur
}

func computeSmoothedPositions(g *core.Graph, p policy.SkeletonPolicy) map[string]geom2d.Point {
	out := make(map[string]geom2d.Point)
	for _, n := range g.Nodes() {
		nbrs := g.Neighbors(n.Key)
		if len(nbrs) < 2 {
			continue
		}
		var sumX, sumY float64
		count := 0
		for _, e := range nbrs {
			other, err := g.GetNode(e.OtherEnd(n.Key))
			if err != nil {
				continue
			}
			dx, dy := other.X-n.X, other.Y-n.Y
			ln := math.Hypot(dx, dy)
			if ln > geom2d.Eps {
				sumX += dx / ln
				sumY += dy / ln
				count++
			}
		}
		if count < 2 {
			continue
		}
		ax, ay := sumX/float64(count), sumY/float64(count)
		an := math.Hypot(ax, ay)
		if an < geom2d.Eps {
			continue
		}
		tx := n.X + (ax/an)*p.GraphSmoothTargetShiftM
		ty := n.Y + (ay/an)*p.GraphSmoothTargetShiftM
		nxp := (1-p.GraphSmoothAlpha)*n.X + p.GraphSmoothAlpha*tx
		nyp := (1-p.GraphSmoothAlpha)*n.Y + p.GraphSmoothAlpha*ty
		out[n.Key] = geom2d.Point{X: nxp, Y: nyp}.Round(geom2d.Precision)
	}
	return out
}

func morphEndpoints(geom geom2d.LineString, uNew, vNew geom2d.Point) geom2d.LineString {
	if len(geom) < 2 {
		return geom
	}
	out := append(geom2d.LineString{}, geom...)
	out[0] = uNew
	out[len(out)-1] = vNew
	return out
}

func directionalSmoothAndResample(ls geom2d.LineString, p policy.SkeletonPolicy) geom2d.LineString {
	if len(ls) < 2 {
		return ls
	}
	window := p.DirectionSmoothWindow
	if window < 3 {
		window = 3
	}
	smoothed := make(geom2d.LineString, len(ls))
	for i := range ls {
		lo := i - window/2
		if lo < 0 {
			lo = 0
		}
		hi := i + window/2 + 1
		if hi > len(ls) {
			hi = len(ls)
		}
		var sx, sy float64
		cnt := 0
		for k := lo; k < hi; k++ {
			sx += ls[k].X
			sy += ls[k].Y
			cnt++
		}
		smoothed[i] = geom2d.Point{X: sx / float64(cnt), Y: sy / float64(cnt)}
	}
	smoothed[0] = ls[0]
	smoothed[len(ls)-1] = ls[len(ls)-1]

	total := geom2d.Length(smoothed)
	if total <= geom2d.Eps {
		return smoothed
	}
	step := p.ResampleMinStepM
	if p.ResampleStepM > step {
		step = p.ResampleStepM
	}
	n := int(total/step) + 1
	if n < 2 {
		n = 2
	}
	out := make(geom2d.LineString, 0, n)
	for i := 0; i < n; i++ {
		d := (float64(i) / float64(n-1)) * total
		out = append(out, geom2d.Interpolate(smoothed, d, false))
	}
	return out
}
