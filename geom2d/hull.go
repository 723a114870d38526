package geom2d

import (
	"math"
	"sort"
)

// ConvexHull returns the convex hull of pts via Andrew's monotone chain, in
// counter-clockwise order with no repeated closing point. Collinear points
// on an edge are dropped. For fewer than 3 distinct points, returns those
// distinct points (sorted by X, then Y) unchanged.
func ConvexHull(pts []Point) []Point {
	uniq := dedupeSorted(pts)
	n := len(uniq)
	if n < 3 {
		return uniq
	}

	hull := make([]Point, 0, 2*n)
	// Lower hull.
	for _, p := range uniq {
		for len(hull) >= 2 && cross3(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper hull.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && cross3(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func dedupeSorted(pts []Point) []Point {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	sort.Slice(cp, func(i, j int) bool {
		if cp[i].X != cp[j].X {
			return cp[i].X < cp[j].X
		}
		return cp[i].Y < cp[j].Y
	})
	out := cp[:0:0]
	for i, p := range cp {
		if i == 0 || p.Dist(cp[i-1]) > Eps {
			out = append(out, p)
		}
	}
	return out
}

func cross3(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// RotatedRect is a minimum-area bounding rectangle described by its center,
// the two half-extents along its own axes, and the unit vector of its
// longest axis.
type RotatedRect struct {
	Center     Point
	LongAxis   Point // unit vector along the long side
	ShortAxis  Point // unit vector along the short side
	LongExtent float64
	ShortExtent float64
}

// ShortEdge returns the length of the rectangle's shorter side.
func (r RotatedRect) ShortEdge() float64 { return 2 * r.ShortExtent }

// LongEdge returns the length of the rectangle's longer side.
func (r RotatedRect) LongEdge() float64 { return 2 * r.LongExtent }

// MinRotatedRectangle computes the minimum-area bounding rectangle of a
// polygon's exterior ring via rotating calipers over its convex hull.
func MinRotatedRectangle(p Polygon) RotatedRect {
	hull := ConvexHull(p.Exterior)
	if len(hull) == 0 {
		return RotatedRect{}
	}
	if len(hull) < 3 {
		// Degenerate: treat as a zero-width segment/point.
		var a, b Point
		if len(hull) == 2 {
			a, b = hull[0], hull[1]
		} else {
			a, b = hull[0], hull[0]
		}
		axis := b.Sub(a).Unit()
		half := a.Dist(b) / 2
		return RotatedRect{
			Center:      Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2},
			LongAxis:    axis,
			ShortAxis:   axis.RightNormal(),
			LongExtent:  half,
			ShortExtent: 0,
		}
	}

	best := RotatedRect{}
	bestArea := math.Inf(1)
	n := len(hull)
	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		edge := b.Sub(a).Unit()
		if edge.Norm() < Eps {
			continue
		}
		normal := edge.RightNormal()

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, h := range hull {
			rel := h.Sub(a)
			u := rel.Dot(edge)
			v := rel.Dot(normal)
			minU, maxU = math.Min(minU, u), math.Max(maxU, u)
			minV, maxV = math.Min(minV, v), math.Max(maxV, v)
		}
		area := (maxU - minU) * (maxV - minV)
		if area < bestArea {
			bestArea = area
			cu := (minU + maxU) / 2
			cv := (minV + maxV) / 2
			center := a.Add(edge.Scale(cu)).Add(normal.Scale(cv))
			extU := (maxU - minU) / 2
			extV := (maxV - minV) / 2
			if extU >= extV {
				best = RotatedRect{Center: center, LongAxis: edge, ShortAxis: normal, LongExtent: extU, ShortExtent: extV}
			} else {
				best = RotatedRect{Center: center, LongAxis: normal, ShortAxis: edge, LongExtent: extV, ShortExtent: extU}
			}
		}
	}
	return best
}
