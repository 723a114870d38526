package refine

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

// SeparateParallelAndReconnect runs both halves of spec §4.9 in order:
// separate overlapping near-parallel edges, then reconnect directionally
// aligned broken endpoints.
func SeparateParallelAndReconnect(g *core.Graph, boundary geom2d.MultiPolygon, p policy.SkeletonPolicy) {
	SeparateCloseParallelEdges(g, p)
	ReconnectDirectionalBreaks(g, boundary, p)
}
