package candidates

import (
	"math"
	"sort"

	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// BoundaryPairCandidates samples part's exterior boundary at
// policy.PairSampleStepM, buckets the samples by
// round(longitudinal-projection / PairAxisBinM) onto the
// minimum-rotated-rectangle long axis, and within each bucket takes the
// extremal point on either side of that axis (largest lateral offset on
// each side). A bucket only emits a midpoint when its two extremal points'
// Euclidean distance clears MinLaneWidthM — a pinch point narrower than a
// lane is dropped outright rather than surviving as a thin centerline.
// Surviving midpoints are chained in bucket order and the chain breaks
// wherever consecutive midpoints are farther apart than
// PairAxisBinM*PairSegmentBreakBinRatio, discarding any resulting
// single-point fragment (spec §4.5).
func BoundaryPairCandidates(part geom2d.Polygon, context geom2d.MultiPolygon, p policy.SkeletonPolicy) []Candidate {
	rect := geom2d.MinRotatedRectangle(part)
	if rect.LongAxis.Norm() < geom2d.Eps {
		return nil
	}

	sampled := geom2d.Densify(part.Exterior, p.PairSampleStepM)
	center := centroidOf(part)

	type sidePoint struct {
		pt      geom2d.Point
		lateral float64 // signed
	}
	buckets := make(map[int]struct {
		left, right sidePoint
		hasLeft     bool
		hasRight    bool
	})
	for _, pt := range sampled {
		rel := pt.Sub(center)
		longitudinal := rel.Dot(rect.LongAxis)
		lateral := rel.Dot(rect.ShortAxis)
		key := int(math.Round(longitudinal / p.PairAxisBinM))

		b := buckets[key]
		abs := math.Abs(lateral)
		if lateral >= 0 {
			if !b.hasLeft || abs > math.Abs(b.left.lateral) {
				b.left = sidePoint{pt, lateral}
				b.hasLeft = true
			}
		} else {
			if !b.hasRight || abs > math.Abs(b.right.lateral) {
				b.right = sidePoint{pt, lateral}
				b.hasRight = true
			}
		}
		buckets[key] = b
	}

	type mid struct {
		key int
		pt  geom2d.Point
	}
	var mids []mid
	for key, b := range buckets {
		if !b.hasLeft || !b.hasRight {
			continue
		}
		width := b.left.pt.Dist(b.right.pt)
		if width < p.MinLaneWidthM {
			continue
		}
		mids = append(mids, mid{
			key: key,
			pt:  geom2d.Point{X: (b.left.pt.X + b.right.pt.X) / 2, Y: (b.left.pt.Y + b.right.pt.Y) / 2},
		})
	}
	if len(mids) < 2 {
		return nil
	}
	sort.Slice(mids, func(i, j int) bool { return mids[i].key < mids[j].key })

	breakDist := p.PairAxisBinM * p.PairSegmentBreakBinRatio
	var chains []geom2d.LineString
	cur := geom2d.LineString{mids[0].pt}
	for i := 1; i < len(mids); i++ {
		if mids[i].pt.Dist(mids[i-1].pt) > breakDist {
			if len(cur) >= 2 {
				chains = append(chains, cur)
			}
			cur = geom2d.LineString{mids[i].pt}
			continue
		}
		cur = append(cur, mids[i].pt)
	}
	if len(cur) >= 2 {
		chains = append(chains, cur)
	}

	var out []Candidate
	for _, chain := range chains {
		for _, piece := range geom2d.ClipLineToPolygon(chain, part) {
			out = append(out, Candidate{Geometry: piece, Source: "boundary-pair"})
		}
	}
	return out
}

// centroidOf computes part's exterior-ring area centroid (holes ignored,
// matching Shapely's centroid closely enough for the longitudinal/lateral
// split this feeds, which only needs a point roughly inside the polygon).
func centroidOf(part geom2d.Polygon) geom2d.Point {
	closed := part.Exterior.Closed()
	if len(closed) < 4 {
		rect := geom2d.MinRotatedRectangle(part)
		return rect.Center
	}
	var areaAcc, cx, cy float64
	for i := 0; i < len(closed)-1; i++ {
		a, b := closed[i], closed[i+1]
		cross := a.X*b.Y - b.X*a.Y
		areaAcc += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	if math.Abs(areaAcc) < geom2d.Eps {
		rect := geom2d.MinRotatedRectangle(part)
		return rect.Center
	}
	area := areaAcc / 2
	return geom2d.Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// Generate produces both candidate families for part (spec §4.4, §4.5).
func Generate(part geom2d.Polygon, context geom2d.MultiPolygon, p policy.SkeletonPolicy) []Candidate {
	out := VoronoiCandidates(part, context, p)
	out = append(out, BoundaryPairCandidates(part, context, p)...)
	return out
}
