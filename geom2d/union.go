package geom2d

import (
	"fmt"
	"math"
)

// Union merges a set of polygons into a (possibly still multi-part)
// MultiPolygon: any two input polygons whose exteriors overlap are fused
// into one ring via boundary noding and a keep-outside-the-other
// classification (the standard two-polygon union rule); disjoint parts are
// kept separate. Holes are dropped by union (the pipeline never unions
// polygons with holes of interest; stabilization only needs one merged
// exterior per road unit).
func Union(polys []Polygon) MultiPolygon {
	var result []Polygon
	for _, p := range polys {
		if p.IsEmpty() {
			continue
		}
		merged := false
		for i := range result {
			if !boundingBoxesOverlap(result[i].Exterior, p.Exterior) {
				continue
			}
			if u, ok := unionTwoRings(result[i].Exterior, p.Exterior); ok {
				result[i] = Polygon{Exterior: u}
				merged = true
				break
			}
		}
		if !merged {
			result = append(result, Polygon{Exterior: append(Ring{}, p.Exterior...)})
		}
	}
	return MultiPolygon(result)
}

func boundingBoxesOverlap(a, b Ring) bool {
	ax0, ay0, ax1, ay1 := ringBounds(a)
	bx0, by0, bx1, by1 := ringBounds(b)
	return ax0 <= bx1 && bx0 <= ax1 && ay0 <= by1 && by0 <= ay1
}

func ringBounds(r Ring) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range r {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

// unionTwoRings nodes a and b against each other, keeps the segments of
// each that lie outside the other polygon, and traces the resulting edge
// set into a single closed ring. Returns ok=false if the traced result is
// not a single simple loop (e.g. the two rings are disjoint, or touch in a
// way the simple trace cannot resolve), in which case the caller should
// keep the inputs separate.
func unionTwoRings(a, b Ring) (Ring, bool) {
	notedA := nodeRingAgainst(a, b)
	notedB := nodeRingAgainst(b, a)

	polyA := Polygon{Exterior: a}
	polyB := Polygon{Exterior: b}

	type edge struct{ from, to Point }
	var kept []edge
	collect := func(ring LineString, other Polygon) {
		for i := 1; i < len(ring); i++ {
			mid := Point{(ring[i-1].X + ring[i].X) / 2, (ring[i-1].Y + ring[i].Y) / 2}
			if !PointInPolygon(mid, other) {
				kept = append(kept, edge{ring[i-1], ring[i]})
			}
		}
	}
	collect(notedA, polyB)
	collect(notedB, polyA)

	if len(kept) == 0 {
		return nil, false
	}

	adj := make(map[string][]Point)
	key := func(p Point) string {
		r := p.Round(6)
		return fmt.Sprintf("%.6f,%.6f", r.X, r.Y)
	}
	for _, e := range kept {
		adj[key(e.from)] = append(adj[key(e.from)], e.to)
		adj[key(e.to)] = append(adj[key(e.to)], e.from)
	}

	start := kept[0].from
	ring := Ring{start}
	visited := map[string]bool{key(start): true}
	cur := start
	prevKey := ""
	for i := 0; i < len(kept)*2+4; i++ {
		nbrs := adj[key(cur)]
		var next Point
		found := false
		for _, cand := range nbrs {
			if key(cand) == prevKey {
				continue
			}
			next = cand
			found = true
			break
		}
		if !found {
			if len(nbrs) == 0 {
				return nil, false
			}
			next = nbrs[0]
		}
		if key(next) == key(start) {
			return ring, len(ring) >= 3
		}
		if visited[key(next)] {
			return nil, false
		}
		visited[key(next)] = true
		ring = append(ring, next)
		prevKey = key(cur)
		cur = next
	}
	return nil, false
}

// nodeRingAgainst returns ring a as a closed LineString with every
// intersection point against ring b inserted in order along each edge.
func nodeRingAgainst(a, b Ring) LineString {
	closedA := a.Closed()
	closedB := b.Closed()
	out := LineString{closedA[0]}
	for i := 1; i < len(closedA); i++ {
		segStart, segEnd := closedA[i-1], closedA[i]
		var hits []Point
		for j := 1; j < len(closedB); j++ {
			if pt, ok := SegmentIntersection(segStart, segEnd, closedB[j-1], closedB[j]); ok {
				hits = append(hits, pt)
			}
		}
		sortAlong(segStart, hits)
		out = append(out, hits...)
		out = append(out, segEnd)
	}
	return out
}

func sortAlong(origin Point, pts []Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && origin.Dist(pts[j]) < origin.Dist(pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}
