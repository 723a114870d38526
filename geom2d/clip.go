package geom2d

// ClipLineToPolygon splits ls at every crossing with poly's boundary and
// returns the constituent pieces whose midpoint lies inside poly.
func ClipLineToPolygon(ls LineString, poly Polygon) []LineString {
	if len(ls) < 2 {
		return nil
	}
	cuts := []Point{ls[0]}
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		var hits []Point
		for _, ring := range poly.AllRings() {
			closed := ring.Closed()
			for j := 1; j < len(closed); j++ {
				if pt, ok := SegmentIntersection(a, b, closed[j-1], closed[j]); ok {
					hits = append(hits, pt)
				}
			}
		}
		sortAlong(a, hits)
		cuts = append(cuts, hits...)
		cuts = append(cuts, b)
	}

	var out []LineString
	for i := 1; i < len(cuts); i++ {
		a, b := cuts[i-1], cuts[i]
		if a.Dist(b) < Eps {
			continue
		}
		mid := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
		if PointInPolygon(mid, poly) {
			out = append(out, LineString{a, b})
		}
	}
	return mergeAdjacent(out)
}

// MergeAdjacentLines stitches pieces sharing an endpoint (current piece's
// last point equals the next piece's first point) back into longer
// polylines, in input order.
func MergeAdjacentLines(pieces []LineString) []LineString {
	return mergeAdjacent(pieces)
}

// mergeAdjacent stitches consecutive two-point pieces sharing an endpoint
// back into longer polylines.
func mergeAdjacent(pieces []LineString) []LineString {
	if len(pieces) == 0 {
		return nil
	}
	out := []LineString{append(LineString{}, pieces[0]...)}
	for _, piece := range pieces[1:] {
		last := out[len(out)-1]
		if last[len(last)-1].Dist(piece[0]) < Eps {
			out[len(out)-1] = append(last, piece[1:]...)
		} else {
			out = append(out, append(LineString{}, piece...))
		}
	}
	return out
}

// ClipLineToMultiPolygon clips ls against every part of mp and concatenates
// the results.
func ClipLineToMultiPolygon(ls LineString, mp MultiPolygon) []LineString {
	var out []LineString
	for _, poly := range mp {
		out = append(out, ClipLineToPolygon(ls, poly)...)
	}
	return out
}

// InsideRatio returns the fraction of ls's length that lies inside poly,
// sampled every step along the line, both endpoints included. A non-positive
// step samples the start, middle and end; a step longer than the line
// samples only the two endpoints.
func InsideRatio(ls LineString, poly Polygon, step float64) float64 {
	total := Length(ls)
	if total < Eps {
		return 0
	}
	if step <= Eps {
		step = total
	}
	n := int(total/step) + 1
	if n < 1 {
		n = 1
	}
	inside := 0
	for i := 0; i <= n; i++ {
		d := float64(i) * total / float64(n)
		p := Interpolate(ls, d, false)
		if PointInPolygon(p, poly) {
			inside++
		}
	}
	return float64(inside) / float64(n+1)
}
