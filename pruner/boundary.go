package pruner

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/policy"
)

// BoundaryNearPrune removes leaf paths that hug the stabilized boundary too
// closely, per component protection rules (spec §4.8.2). Component
// metadata (total length, max radius) is computed once up front, matching
// the source's single pre-loop snapshot.
func BoundaryNearPrune(g *core.Graph, p policy.SkeletonPolicy) {
	compOf := make(map[string]core.Component)
	for _, c := range g.ConnectedComponents() {
		for _, k := range c.NodeKeys {
			compOf[k] = c
		}
	}

	for {
		leaves := leavesOf(g)
		if len(leaves) == 0 {
			return
		}

		hard := make(map[string]bool)
		soft := make(map[string]bool)
		processed := false

		for _, leaf := range leaves {
			path, ok := traceLeafToJunction(g, leaf)
			if !ok || len(path.edges) == 0 {
				continue
			}
			if comp, found := compOf[leaf]; found {
				if comp.TotalLen >= p.BoundaryProtectComponentMinLenM || comp.MaxRadius >= p.BoundaryProtectComponentMaxRadius {
					continue
				}
			}

			hit := 0
			for _, key := range path.nodes {
				if nodeRadius(g, key) <= p.BoundaryMinRadiusHitM {
					hit++
				}
			}
			hitRatio := float64(hit) / float64(maxInt(len(path.nodes), 1))

			if path.junctionRadius <= p.BoundaryHardMinRadiusM {
				for _, eid := range path.edges {
					hard[eid] = true
				}
				processed = true
				continue
			}

			if hitRatio >= p.BoundaryMaxHitRatio || hit >= p.BoundaryMaxAbsHits {
				k := p.BoundaryRemoveLeafEdgesCount
				if k > len(path.edges) {
					k = len(path.edges)
				}
				for _, eid := range path.edges[:k] {
					soft[eid] = true
				}
				processed = true
			}
		}

		if !processed || (len(hard) == 0 && len(soft) == 0) {
			return
		}
		removeEdgeSet(g, hard)
		removeEdgeSet(g, soft)
		g.RemoveIsolatedNodes()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
