package topology

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

// SmoothIntersections drops intermediate vertices that fall within
// clearanceRadiusM of either endpoint of an edge touching a degree>=3
// node, which pulls the vertex chain directly into the junction instead
// of curling around it (spec §4.11 "IntersectionSmoother"). Edges with
// neither endpoint a junction pass through unchanged. Grounded on
// topology/strategies.py's IntersectionSmoother.
func SmoothIntersections(lines []geom2d.LineString, clearanceRadiusM float64) []geom2d.LineString {
	if len(lines) == 0 {
		return lines
	}
	g := buildMultiGraph(lines)
	highDeg := make(map[string]bool)
	for _, n := range g.Nodes() {
		if g.Degree(n.Key) >= 3 {
			highDeg[n.Key] = true
		}
	}

	out := make([]geom2d.LineString, 0, len(lines))
	for _, ln := range lines {
		if len(ln) < 2 {
			out = append(out, ln)
			continue
		}
		uKey := core.NodeKey(ln[0])
		vKey := core.NodeKey(ln[len(ln)-1])
		if !highDeg[uKey] && !highDeg[vKey] {
			out = append(out, ln)
			continue
		}

		uPt, vPt := ln[0], ln[len(ln)-1]
		kept := make(geom2d.LineString, 0, len(ln))
		kept = append(kept, uPt)
		for i := 1; i < len(ln)-1; i++ {
			pt := ln[i]
			if pt.Dist(uPt) <= clearanceRadiusM || pt.Dist(vPt) <= clearanceRadiusM {
				continue
			}
			kept = append(kept, pt)
		}
		kept = append(kept, vPt)
		if len(kept) < 2 {
			kept = geom2d.LineString{uPt, vPt}
		}
		out = append(out, kept)
	}
	return out
}
