package geom2d

import "math"

// Buffer offsets a polygon outward (dist > 0) or inward (dist < 0) using a
// per-vertex miter offset, modeled on the vertex-offset approach in the
// Clipper2 port referenced in DESIGN.md: each ring edge is translated along
// its outward unit normal, and consecutive translated edges are rejoined by
// intersecting them (falling back to a direct bevel point when the edges
// are too close to parallel to intersect cleanly). A self-intersection
// splice pass then removes loops introduced by erosion collapsing narrow
// parts, keeping only the simple constituent rings with non-trivial area.
//
// Buffer(p, +x).Buffer(-x) and Buffer(p, -x).Buffer(+x) together implement
// the morphological open/close used by polygon stabilization.
func Buffer(p Polygon, dist float64) MultiPolygon {
	if p.IsEmpty() || math.Abs(dist) < Eps {
		return MultiPolygon{p}
	}
	ext := offsetRing(p.Exterior, dist, true)
	if len(ext) < 3 || AbsArea(ext) < Eps {
		return nil
	}
	rings := spliceSelfIntersections(ext)
	out := make(MultiPolygon, 0, len(rings))
	for _, r := range rings {
		if len(r) >= 3 && AbsArea(r) > Eps {
			out = append(out, Polygon{Exterior: r})
		}
	}
	if len(out) == 0 {
		return nil
	}

	for _, h := range p.Holes {
		hOff := offsetRing(h, -dist, false)
		if len(hOff) < 3 || AbsArea(hOff) < Eps {
			continue
		}
		// Attach the hole to whichever output part contains it.
		for i := range out {
			if PointInRing(hOff[0], out[i].Exterior) {
				out[i].Holes = append(out[i].Holes, hOff)
				break
			}
		}
	}
	return out
}

// offsetRing translates every edge of r by dist along its outward normal
// (outward defined relative to ccw orientation when ccw is true) and
// rejoins consecutive offset edges at their intersection.
func offsetRing(r Ring, dist float64, ccw bool) Ring {
	n := len(r)
	if n < 3 {
		return nil
	}
	// Normalize orientation so "outward" is consistently to the right of
	// each directed edge for a ccw ring.
	signedArea := Area(r)
	work := r
	if (signedArea < 0) == ccw {
		work = reverseRing(r)
	}

	closed := work.Closed()
	type offEdge struct{ a, b Point }
	edges := make([]offEdge, n)
	for i := 0; i < n; i++ {
		a, b := closed[i], closed[i+1]
		dir := b.Sub(a).Unit()
		// Outward normal for a ccw ring points to the right of travel.
		normal := Point{dir.Y, -dir.X}
		off := normal.Scale(dist)
		edges[i] = offEdge{a.Add(off), b.Add(off)}
	}

	out := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		prev := edges[(i-1+n)%n]
		cur := edges[i]
		if pt, ok := SegmentIntersection(
			Point{prev.a.X - 1e6*(prev.b.X-prev.a.X), prev.a.Y - 1e6*(prev.b.Y-prev.a.Y)},
			Point{prev.b.X + 1e6*(prev.b.X-prev.a.X), prev.b.Y + 1e6*(prev.b.Y-prev.a.Y)},
			Point{cur.a.X - 1e6*(cur.b.X-cur.a.X), cur.a.Y - 1e6*(cur.b.Y-cur.a.Y)},
			Point{cur.b.X + 1e6*(cur.b.X-cur.a.X), cur.b.Y + 1e6*(cur.b.Y-cur.a.Y)},
		); ok {
			out = append(out, pt)
		} else {
			// Near-parallel edges: bevel with the midpoint.
			out = append(out, Point{(prev.b.X + cur.a.X) / 2, (prev.b.Y + cur.a.Y) / 2})
		}
	}
	return out
}

func reverseRing(r Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// spliceSelfIntersections detects self-intersections introduced by offset
// (typical of erosion collapsing a narrow protrusion) and splits the ring
// at them, returning every simple constituent loop found. A ring with no
// self-intersection is returned unchanged as the sole element.
func spliceSelfIntersections(r Ring) []Ring {
	closed := r.Closed()
	n := len(closed) - 1
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			pt, ok := SegmentIntersection(closed[i], closed[i+1], closed[j], closed[j+1])
			if !ok {
				continue
			}
			loopA := append(Ring{}, closed[i+1:j+1]...)
			loopA = append(Ring{pt}, loopA...)
			loopB := append(Ring{}, closed[j+1:]...)
			loopB = append(loopB, closed[:i+1]...)
			loopB = append(loopB, pt)

			var results []Ring
			results = append(results, spliceSelfIntersections(loopA)...)
			results = append(results, spliceSelfIntersections(loopB)...)
			return results
		}
	}
	return []Ring{r}
}
