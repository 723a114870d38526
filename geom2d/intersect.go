package geom2d

import "math"

// SegmentIntersection computes the intersection point of segments (a,b) and
// (c,d), if any, and whether it exists strictly within both segments
// (endpoints included). Parallel/collinear segments report no intersection
// (callers handle overlap separately where relevant).
func SegmentIntersection(a, b, c, d Point) (Point, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.Cross(s)
	if math.Abs(denom) < Eps {
		return Point{}, false
	}
	qp := c.Sub(a)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -Eps || t > 1+Eps || u < -Eps || u > 1+Eps {
		return Point{}, false
	}
	return a.Add(r.Scale(t)), true
}

// SegmentsIntersect reports whether segments (a,b) and (c,d) intersect.
func SegmentsIntersect(a, b, c, d Point) bool {
	_, ok := SegmentIntersection(a, b, c, d)
	return ok
}
