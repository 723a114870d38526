package geom2d

import "math"

// Area returns the signed area of a ring via the shoelace formula. Positive
// for counter-clockwise orientation.
func Area(r Ring) float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// AbsArea returns the unsigned area of a ring.
func AbsArea(r Ring) float64 { return math.Abs(Area(r)) }

// PointInRing reports whether p lies strictly inside r using the standard
// ray-casting test. Boundary membership is not guaranteed either way.
func PointInRing(p Point, r Ring) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// PointInPolygon reports whether p lies inside the polygon's exterior ring
// and outside every hole.
func PointInPolygon(p Point, poly Polygon) bool {
	if !PointInRing(p, poly.Exterior) {
		return false
	}
	for _, h := range poly.Holes {
		if PointInRing(p, h) {
			return false
		}
	}
	return true
}

// PointInMultiPolygon reports whether p lies inside any part of mp.
func PointInMultiPolygon(p Point, mp MultiPolygon) bool {
	for _, poly := range mp {
		if PointInPolygon(p, poly) {
			return true
		}
	}
	return false
}

// DistToSegment returns the shortest distance from p to segment a-b.
func DistToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < Eps*Eps {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Scale(t))
	return p.Dist(proj)
}

// DistanceToBoundary returns the minimum distance from p to any edge of
// the polygon's exterior ring or holes.
func DistanceToBoundary(p Point, poly Polygon) float64 {
	best := math.Inf(1)
	for _, ring := range poly.AllRings() {
		closed := ring.Closed()
		for i := 1; i < len(closed); i++ {
			d := DistToSegment(p, closed[i-1], closed[i])
			if d < best {
				best = d
			}
		}
	}
	return best
}

// DistanceToBoundaryMulti returns the minimum boundary distance over every
// polygon part, or +Inf if mp is empty.
func DistanceToBoundaryMulti(p Point, mp MultiPolygon) float64 {
	best := math.Inf(1)
	for _, poly := range mp {
		if d := DistanceToBoundary(p, poly); d < best {
			best = d
		}
	}
	return best
}
