package topology

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

// SimplifyNetwork Douglas-Peucker-simplifies every edge, picking
// junctionToleranceM over mainToleranceM whenever either endpoint touches
// junctionMinDegree or more edges across the whole network (spec §4.11
// "NetworkSimplifier": junctions keep coarser detail so the merge above
// them doesn't reappear as a kink). Grounded on
// topology/strategies.py's NetworkSimplifier.
func SimplifyNetwork(lines []geom2d.LineString, mainToleranceM, junctionToleranceM float64, junctionMinDegree int) []geom2d.LineString {
	if len(lines) == 0 {
		return lines
	}
	degree := make(map[string]int)
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		degree[core.NodeKey(ln[0])]++
		degree[core.NodeKey(ln[len(ln)-1])]++
	}

	out := make([]geom2d.LineString, 0, len(lines))
	for _, ln := range lines {
		if len(ln) < 2 {
			out = append(out, ln)
			continue
		}
		uDeg := degree[core.NodeKey(ln[0])]
		vDeg := degree[core.NodeKey(ln[len(ln)-1])]
		tol := mainToleranceM
		if uDeg >= junctionMinDegree || vDeg >= junctionMinDegree {
			tol = junctionToleranceM
		}
		out = append(out, geom2d.Simplify(ln, tol))
	}
	return out
}
