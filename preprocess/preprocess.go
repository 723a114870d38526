// Package preprocess clusters polygons into road units and stabilizes the
// merged geometry before candidate generation (spec §4.2, §4.3). Grounded
// on original_source/Service/gis_modules/skeleton/generator.py's
// merge_polygons and stabilize_geometry.
package preprocess

import (
	"github.com/dkovalov/roadskeleton/cluster"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// MergeDistanceThreshold returns max(merge_distance_min, min_lane_width *
// merge_distance_lane_width_ratio), the distance threshold used by both
// cluster growth and the close-but-dissimilar veto (spec §4.2).
func MergeDistanceThreshold(p policy.SkeletonPolicy) float64 {
	th := p.MinLaneWidthM * p.MergeDistanceLaneWidthRatio
	if p.MergeDistanceMinM > th {
		return p.MergeDistanceMinM
	}
	return th
}

// MergePolygons clusters polys by adjacency (cluster.Group), unions each
// cluster, then unions the cluster results together. Grounded on
// generator.py's merge_polygons: "Union each cluster, then union all
// clusters" (spec §4.2).
func MergePolygons(polys []geom2d.Polygon, p policy.SkeletonPolicy) geom2d.MultiPolygon {
	if len(polys) == 0 {
		return nil
	}
	distTh := MergeDistanceThreshold(p)
	groups := cluster.Group(polys, p.MergeSharedRatioTh, distTh)

	var clusterParts []geom2d.Polygon
	for _, idxs := range groups {
		members := make([]geom2d.Polygon, 0, len(idxs))
		for _, i := range idxs {
			members = append(members, polys[i])
		}
		merged := geom2d.Union(members)
		clusterParts = append(clusterParts, merged...)
	}
	return geom2d.Union(clusterParts)
}

// Stabilize morphologically opens-then-closes each polygon part
// (buffer(-p).buffer(+p) with p = protrusion_clean_m), simplifies sharp
// angles, passes the result through a zero-distance Buffer, and drops
// parts that vanish or whose minimum-rotated-rectangle short edge falls
// below min_lane_width_m (spec §4.3). A zero-distance Buffer returns its
// input unchanged, so invalid (e.g. self-intersecting) rings are not
// repaired here.
func Stabilize(mp geom2d.MultiPolygon, p policy.SkeletonPolicy) geom2d.MultiPolygon {
	var out geom2d.MultiPolygon
	for _, part := range mp {
		opened := geom2d.Buffer(part, -p.ProtrusionCleanM)
		if len(opened) == 0 {
			continue
		}
		for _, o := range opened {
			closed := geom2d.Buffer(o, p.ProtrusionCleanM)
			for _, c := range closed {
				// Simplify operates on a closed LineString; drop the
				// duplicated closing point to keep Ring's open form.
				simplified := geom2d.Polygon{
					Exterior: openRing(geom2d.Simplify(c.Exterior.Closed(), p.SharpAngleSimplifyM)),
				}
				fixed := geom2d.Buffer(simplified, 0)
				for _, f := range fixed {
					if f.IsEmpty() {
						continue
					}
					rect := geom2d.MinRotatedRectangle(f)
					if rect.ShortEdge() < p.MinLaneWidthM {
						continue
					}
					out = append(out, f)
				}
			}
		}
	}
	return out
}

func openRing(closed geom2d.LineString) geom2d.Ring {
	if len(closed) < 2 {
		return geom2d.Ring(closed)
	}
	if closed[0].Dist(closed[len(closed)-1]) < geom2d.Eps {
		return geom2d.Ring(closed[:len(closed)-1])
	}
	return geom2d.Ring(closed)
}
