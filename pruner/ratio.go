package pruner

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/policy"
)

// RatioPrune repeatedly removes every leaf path whose total length is less
// than its terminal junction's radius scaled by PruneRatioLimit, until a
// pass removes nothing (spec §4.8.1).
func RatioPrune(g *core.Graph, p policy.SkeletonPolicy) {
	for {
		leaves := leavesOf(g)
		if len(leaves) == 0 {
			return
		}

		toRemove := make(map[string]bool)
		processed := false
		for _, leaf := range leaves {
			path, ok := traceLeafToJunction(g, leaf)
			if !ok {
				continue
			}
			threshold := path.junctionRadius * p.PruneRatioLimit
			if path.totalLength < threshold {
				for _, eid := range path.edges {
					toRemove[eid] = true
				}
				processed = true
			}
		}
		if !processed || len(toRemove) == 0 {
			return
		}
		removeEdgeSet(g, toRemove)
		g.RemoveIsolatedNodes()
	}
}
