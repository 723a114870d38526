package pruner

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/policy"
)

// SpurPrune removes, at every junction, branches that are true spurs (the
// branch ends at a degree-1 node rather than another junction) and short
// relative to both an absolute and a junction-local-relative limit (spec
// §4.8.4).
func SpurPrune(g *core.Graph, p policy.SkeletonPolicy) {
	var junctions []string
	for _, n := range g.Nodes() {
		if g.Degree(n.Key) >= 3 {
			junctions = append(junctions, n.Key)
		}
	}
	if len(junctions) == 0 {
		return
	}

	toRemove := make(map[string]bool)
	for _, j := range junctions {
		type branch struct {
			edgeID     string
			length     float64
			isTrueSpur bool
		}
		var branches []branch
		for _, e := range g.Neighbors(j) {
			length, isTrueSpur := traceBranch(g, j, e)
			branches = append(branches, branch{e.ID, length, isTrueSpur})
		}
		if len(branches) == 0 {
			continue
		}
		maxLen := 0.0
		for _, b := range branches {
			if b.length > maxLen {
				maxLen = b.length
			}
		}
		for _, b := range branches {
			if b.isTrueSpur && b.length <= p.SpurAbsMaxLenM && b.length <= maxLen*p.SpurRelRatio {
				toRemove[b.edgeID] = true
			}
		}
	}

	if len(toRemove) > 0 {
		removeEdgeSet(g, toRemove)
		g.RemoveIsolatedNodes()
	}
}

// traceBranch follows the path starting at start via first until it
// reaches a leaf (true spur) or another junction (not a true spur),
// returning the accumulated length.
func traceBranch(g *core.Graph, start string, first *core.Edge) (float64, bool) {
	total := first.Length
	prev := start
	cur := first.OtherEnd(start)
	for {
		deg := g.Degree(cur)
		if deg == 1 {
			return total, true
		}
		if deg >= 3 {
			return total, false
		}
		var next *core.Edge
		for _, e := range g.Neighbors(cur) {
			if e.OtherEnd(cur) != prev {
				next = e
				break
			}
		}
		if next == nil {
			return total, true
		}
		total += next.Length
		prev, cur = cur, next.OtherEnd(cur)
	}
}
