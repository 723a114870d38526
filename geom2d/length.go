package geom2d

// Length returns the cumulative 2D Euclidean length of a polyline.
func Length(ls LineString) float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += ls[i-1].Dist(ls[i])
	}
	return total
}

// Interpolate returns the point at distance t along ls. If normalized is
// true, t is a fraction of total length in [0,1]; otherwise t is an
// absolute distance. t is clamped to the line's extent.
func Interpolate(ls LineString, t float64, normalized bool) Point {
	if len(ls) == 0 {
		return Point{}
	}
	if len(ls) == 1 {
		return ls[0]
	}
	total := Length(ls)
	target := t
	if normalized {
		target = t * total
	}
	if target <= 0 {
		return ls[0]
	}
	if target >= total {
		return ls[len(ls)-1]
	}
	var walked float64
	for i := 1; i < len(ls); i++ {
		seg := ls[i-1].Dist(ls[i])
		if walked+seg >= target {
			remain := target - walked
			frac := 0.0
			if seg > Eps {
				frac = remain / seg
			}
			return Point{
				X: ls[i-1].X + (ls[i].X-ls[i-1].X)*frac,
				Y: ls[i-1].Y + (ls[i].Y-ls[i-1].Y)*frac,
			}
		}
		walked += seg
	}
	return ls[len(ls)-1]
}

// Densify inserts points along each ring edge so no segment exceeds
// interval. Returns a new ring; the input is not mutated.
func Densify(r Ring, interval float64) Ring {
	if interval <= Eps || len(r) < 2 {
		return r
	}
	closed := r.Closed()
	out := make(Ring, 0, len(r)*2)
	for i := 1; i < len(closed); i++ {
		a, b := closed[i-1], closed[i]
		out = append(out, a)
		segLen := a.Dist(b)
		if segLen <= interval {
			continue
		}
		n := int(segLen / interval)
		for k := 1; k <= n; k++ {
			frac := float64(k) / float64(n+1)
			out = append(out, Point{
				X: a.X + (b.X-a.X)*frac,
				Y: a.Y + (b.Y-a.Y)*frac,
			})
		}
	}
	return out
}

// Resample redistributes ls into points spaced step apart by arc length,
// always keeping the first and last original points.
func Resample(ls LineString, step float64) LineString {
	if step <= Eps || len(ls) < 2 {
		return ls
	}
	total := Length(ls)
	if total <= Eps {
		return ls
	}
	n := int(total / step)
	if n < 1 {
		n = 1
	}
	out := make(LineString, 0, n+1)
	for i := 0; i <= n; i++ {
		d := float64(i) * total / float64(n)
		out = append(out, Interpolate(ls, d, false))
	}
	return out
}
