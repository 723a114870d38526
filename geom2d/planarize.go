package geom2d

import "fmt"

// Planarize takes the union of all input lines and splits them at every
// pairwise self-intersection (including intersections between distinct
// input lines), returning the maximal non-crossing constituent pieces with
// duplicate pieces removed. Running Planarize on its own output is
// idempotent.
func Planarize(lines []LineString) []LineString {
	var noded []LineString
	for _, ls := range lines {
		noded = append(noded, nodeAgainstAll(ls, lines)...)
	}
	return dedupeLines(noded)
}

// nodeAgainstAll returns ls split at every intersection it has with any
// line in others (including itself, for self-crossing lines).
func nodeAgainstAll(ls LineString, others []LineString) []LineString {
	if len(ls) < 2 {
		return nil
	}
	var cutPoints []Point
	var isHit []bool
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		var hits []Point
		for _, other := range others {
			for j := 1; j < len(other); j++ {
				c, d := other[j-1], other[j]
				if a.Dist(c) < Eps && b.Dist(d) < Eps || a.Dist(d) < Eps && b.Dist(c) < Eps {
					continue // identical segment, not a crossing
				}
				if pt, ok := SegmentIntersection(a, b, c, d); ok {
					if pt.Dist(a) > Eps && pt.Dist(b) > Eps {
						hits = append(hits, pt)
					}
				}
			}
		}
		sortAlong(a, hits)
		if i == 1 {
			cutPoints = append(cutPoints, a)
			isHit = append(isHit, false)
		}
		for _, h := range hits {
			if cutPoints[len(cutPoints)-1].Dist(h) < Eps {
				continue
			}
			cutPoints = append(cutPoints, h)
			isHit = append(isHit, true)
		}
		cutPoints = append(cutPoints, b)
		isHit = append(isHit, false)
	}

	var out []LineString
	var seg LineString
	for i, p := range cutPoints {
		seg = append(seg, p)
		isBreak := isHit[i]
		for _, other := range others {
			for _, v := range other {
				if v.Dist(p) < Eps && i != 0 && i != len(cutPoints)-1 {
					isBreak = true
				}
			}
		}
		if isBreak && len(seg) >= 2 {
			out = append(out, seg)
			seg = LineString{p}
		}
	}
	if len(seg) >= 2 {
		out = append(out, seg)
	}
	return out
}

func dedupeLines(lines []LineString) []LineString {
	seen := make(map[string]bool)
	var out []LineString
	keyOf := func(ls LineString) string {
		a, b := ls[0].Round(6), ls[len(ls)-1].Round(6)
		if fmt.Sprintf("%v", a) > fmt.Sprintf("%v", b) {
			a, b = b, a
		}
		return fmt.Sprintf("%v|%v|%d", a, b, len(ls))
	}
	for _, ls := range lines {
		if len(ls) < 2 {
			continue
		}
		k := keyOf(ls)
		if !seen[k] {
			seen[k] = true
			out = append(out, ls)
		}
	}
	return out
}
