package geom2d

import "math"

type triangle struct {
	a, b, c int // indices into the point set (includes super-triangle verts)
}

type circumcircle struct {
	center Point
	r2     float64
}

func computeCircumcircle(a, b, c Point) (circumcircle, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < Eps {
		return circumcircle{}, false
	}
	ux := (a.Dot(a)*(b.Y-c.Y) + b.Dot(b)*(c.Y-a.Y) + c.Dot(c)*(a.Y-b.Y)) / d
	uy := (a.Dot(a)*(c.X-b.X) + b.Dot(b)*(a.X-c.X) + c.Dot(c)*(b.X-a.X)) / d
	center := Point{ux, uy}
	return circumcircle{center: center, r2: center.Dist(a) * center.Dist(a)}, true
}

// delaunay runs Bowyer-Watson triangulation over pts, returning triangles
// as index triples into pts. Degenerate (near-collinear, too few distinct)
// inputs yield an empty triangulation.
func delaunay(pts []Point) []triangle {
	n := len(pts)
	if n < 3 {
		return nil
	}

	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax < Eps {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	super := []Point{
		{midX - 20*deltaMax, midY - deltaMax},
		{midX, midY + 20*deltaMax},
		{midX + 20*deltaMax, midY - deltaMax},
	}
	work := append(append([]Point{}, pts...), super...)
	s0, s1, s2 := n, n+1, n+2

	tris := []triangle{{s0, s1, s2}}

	for i := 0; i < n; i++ {
		p := work[i]
		var edges [][2]int
		var keep []triangle
		for _, t := range tris {
			cc, ok := computeCircumcircle(work[t.a], work[t.b], work[t.c])
			if ok && p.Dist(cc.center)*p.Dist(cc.center) <= cc.r2+Eps {
				edges = append(edges, [2]int{t.a, t.b}, [2]int{t.b, t.c}, [2]int{t.c, t.a})
			} else {
				keep = append(keep, t)
			}
		}
		boundary := uniqueEdges(edges)
		for _, e := range boundary {
			keep = append(keep, triangle{e[0], e[1], i})
		}
		tris = keep
	}

	var out []triangle
	for _, t := range tris {
		if t.a < n && t.b < n && t.c < n {
			out = append(out, t)
		}
	}
	return out
}

func uniqueEdges(edges [][2]int) [][2]int {
	count := make(map[[2]int]int)
	norm := func(e [2]int) [2]int {
		if e[0] > e[1] {
			return [2]int{e[1], e[0]}
		}
		return e
	}
	for _, e := range edges {
		count[norm(e)]++
	}
	var out [][2]int
	for e, c := range count {
		if c == 1 {
			out = append(out, e)
		}
	}
	return out
}

// VoronoiRidges returns the bounded Voronoi edges for pts, computed as the
// dual of the Delaunay triangulation: each shared triangle edge yields a
// ridge connecting the two adjacent triangles' circumcenters. Unbounded
// cells (edges on the convex hull have only one adjacent triangle) produce
// no ridge; per DESIGN.md, those rays point away from a densely-sampled
// boundary's interior and would be clipped away by the subsequent
// polygon intersection regardless.
func VoronoiRidges(pts []Point) []Segment {
	tris := delaunay(pts)
	if len(tris) == 0 {
		return nil
	}

	type edgeTris struct {
		t1, t2 int
		has2   bool
	}
	edgeMap := make(map[[2]int]*edgeTris)
	norm := func(a, b int) [2]int {
		if a > b {
			return [2]int{b, a}
		}
		return [2]int{a, b}
	}
	addEdge := func(a, b, ti int) {
		k := norm(a, b)
		et, ok := edgeMap[k]
		if !ok {
			edgeMap[k] = &edgeTris{t1: ti}
			return
		}
		if !et.has2 {
			et.t2 = ti
			et.has2 = true
		}
	}
	centers := make([]Point, len(tris))
	valid := make([]bool, len(tris))
	for i, t := range tris {
		cc, ok := computeCircumcircle(pts[t.a], pts[t.b], pts[t.c])
		if !ok {
			continue
		}
		centers[i] = cc.center
		valid[i] = true
		addEdge(t.a, t.b, i)
		addEdge(t.b, t.c, i)
		addEdge(t.c, t.a, i)
	}

	var out []Segment
	for _, et := range edgeMap {
		if et.has2 && valid[et.t1] && valid[et.t2] {
			if centers[et.t1].Dist(centers[et.t2]) > Eps {
				out = append(out, Segment{centers[et.t1], centers[et.t2]})
			}
		}
	}
	return out
}
