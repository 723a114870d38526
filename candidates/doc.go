// Package candidates generates the two families of centerline candidates
// consumed by the selection stage (spec §4.4, §4.5): Voronoi-skeleton
// candidates and boundary-pair midline candidates. Grounded on
// original_source/Service/gis_modules/skeleton/generator.py's
// generate_voronoi_skeleton and generate_boundary_pair_centerlines.
package candidates

import (
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// Candidate is one proposed centerline piece together with the family it
// came from. The selector (spec §4.6) scores candidates on their geometry
// alone and does not read Source.
type Candidate struct {
	Geometry geom2d.LineString
	Source   string // "voronoi" or "boundary-pair"
}

// passesMinWidth samples ls at p.ResampleStepM and requires every sample to
// lie inside some part of context with local width (2x distance to the
// nearest boundary) at least MinLaneWidthM. A candidate with no samples, or
// any sample outside every part, is rejected (spec §4.4/§4.5: "drop
// candidates that stray outside the stabilized footprint or cross into a
// too-narrow part").
func passesMinWidth(ls geom2d.LineString, context geom2d.MultiPolygon, p policy.SkeletonPolicy) bool {
	total := geom2d.Length(ls)
	if total < geom2d.Eps {
		return false
	}
	step := p.ResampleStepM
	if step <= geom2d.Eps {
		step = total
	}
	n := int(total/step) + 1
	if n < 1 {
		n = 1
	}
	samples := 0
	for i := 0; i <= n; i++ {
		d := float64(i) * total / float64(n)
		pt := geom2d.Interpolate(ls, d, false)
		part, ok := containingPart(pt, context)
		if !ok {
			return false
		}
		if 2*geom2d.DistanceToBoundary(pt, part) < p.MinLaneWidthM {
			return false
		}
		samples++
	}
	return samples > 0
}

func containingPart(pt geom2d.Point, mp geom2d.MultiPolygon) (geom2d.Polygon, bool) {
	for _, part := range mp {
		if geom2d.PointInPolygon(pt, part) {
			return part, true
		}
	}
	return geom2d.Polygon{}, false
}
