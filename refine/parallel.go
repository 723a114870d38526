package refine

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// SeparateCloseParallelEdges walks every edge pair in stable ID order; a
// pair whose midpoints lie within min_lane_width*parallel_close_dist_factor
// and whose chord angle is within parallel_angle_deg is separated by
// shifting the second edge along its right-hand unit normal by
// min_lane_width*parallel_offset_factor. A shifted edge is recorded so it
// is never shifted again in the same pass; a shift that would create a
// self-loop is discarded (spec §4.9 "Separate").
func SeparateCloseParallelEdges(g *core.Graph, p policy.SkeletonPolicy) {
	snapshot := g.Edges()
	moved := make(map[string]bool)
	distTh := p.MinLaneWidthM * p.ParallelCloseDistFactor
	offset := p.MinLaneWidthM * p.ParallelOffsetFactor

	for i := 0; i < len(snapshot); i++ {
		e1, err := g.GetEdge(snapshot[i].ID)
		if err != nil {
			continue
		}
		mid1 := geom2d.Interpolate(e1.Geometry, 0.5, true)
		dir1 := edgeDir(e1.Geometry)

		for j := i + 1; j < len(snapshot); j++ {
			if moved[snapshot[j].ID] {
				continue
			}
			e2, err := g.GetEdge(snapshot[j].ID)
			if err != nil {
				continue
			}
			mid2 := geom2d.Interpolate(e2.Geometry, 0.5, true)
			if mid1.Dist(mid2) > distTh {
				continue
			}
			dir2 := edgeDir(e2.Geometry)
			if angleBetweenDeg(dir1, dir2) > p.ParallelAngleDeg {
				continue
			}

			shifted := shiftLine(e2.Geometry, dir2.RightNormal(), offset)
			if core.NodeKey(shifted[0]) == core.NodeKey(shifted[len(shifted)-1]) {
				continue
			}
			if err := g.RemoveEdge(e2.ID); err != nil {
				continue
			}
			newID, err := g.AddEdge(shifted)
			if err != nil {
				continue
			}
			moved[newID] = true
		}
	}
}

func shiftLine(ls geom2d.LineString, normal geom2d.Point, offset float64) geom2d.LineString {
	out := make(geom2d.LineString, len(ls))
	delta := normal.Scale(offset)
	for i, pt := range ls {
		out[i] = pt.Add(delta)
	}
	return out
}
