package candidates

import (
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// VoronoiCandidates densifies part's boundary at
// policy.VoronoiDensityIntervalM, computes the Voronoi ridges of the
// densified boundary points, clips each ridge to part, stitches the
// surviving pieces back into polylines, and keeps only the pieces that
// satisfy the minimum-lane-width test against context (spec §4.4).
func VoronoiCandidates(part geom2d.Polygon, context geom2d.MultiPolygon, p policy.SkeletonPolicy) []Candidate {
	var pts []geom2d.Point
	for _, ring := range part.AllRings() {
		pts = append(pts, geom2d.Densify(ring, p.VoronoiDensityIntervalM)...)
	}
	if len(pts) < 3 {
		return nil
	}

	ridges := geom2d.VoronoiRidges(pts)
	if len(ridges) == 0 {
		return nil
	}

	var pieces []geom2d.LineString
	for _, ridge := range ridges {
		clipped := geom2d.ClipLineToPolygon(geom2d.LineString{ridge.A, ridge.B}, part)
		pieces = append(pieces, clipped...)
	}
	if len(pieces) == 0 {
		return nil
	}

	merged := geom2d.MergeAdjacentLines(pieces)
	var out []Candidate
	for _, ls := range merged {
		if len(ls) < 2 {
			continue
		}
		if !passesMinWidth(ls, context, p) {
			continue
		}
		out = append(out, Candidate{Geometry: ls, Source: "voronoi"})
	}
	return out
}
