package topology

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/skelgraph"
)

// MergeFalseNodes merges every degree-2 node back into its two incident
// edges (spec §4.11 "TopologyCleaner"), the Go stand-in for
// momepy.remove_false_nodes. Reuses skelgraph's degree-2 splice directly
// rather than reimplementing it — node radius (skelgraph's other
// responsibility) is never touched here since edges are added without it.
func MergeFalseNodes(lines []geom2d.LineString) []geom2d.LineString {
	if len(lines) == 0 {
		return lines
	}
	g := core.NewGraph()
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		if _, err := g.AddEdge(ln); err != nil {
			continue
		}
	}
	skelgraph.MergeDegree2Nodes(g)
	return linesOf(g)
}
