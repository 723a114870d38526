package pruner

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/policy"
)

// ComponentPrune removes every junction-free connected component (max
// degree <= 2) whose total length and max radius both fall below their
// protection floors (spec §4.8.3).
func ComponentPrune(g *core.Graph, p policy.SkeletonPolicy) {
	for _, comp := range g.ConnectedComponents() {
		if comp.MaxDegree >= 3 {
			continue
		}
		if comp.TotalLen >= p.ComponentMinTotalLenM || comp.MaxRadius >= p.ComponentProtectMaxRadius {
			continue
		}
		for _, key := range comp.NodeKeys {
			_ = g.RemoveNode(key)
		}
	}
}
