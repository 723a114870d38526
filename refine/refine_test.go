package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
	"github.com/dkovalov/roadskeleton/refine"
)

func rect(x0, y0, x1, y1 float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestSeparateCloseParallelEdgesShiftsOverlappingEdge(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6})
	g := core.NewGraph()
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 20, Y: 0}})
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0.05}, {X: 20, Y: 0.05}})

	refine.SeparateCloseParallelEdges(g, p)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.NotEqual(t, edges[0].From, edges[1].From)
}

func TestReconnectDirectionalBreaksJoinsAlignedEndpoints(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6})
	boundary := geom2d.MultiPolygon{rect(0, -3, 40, 3)}
	g := core.NewGraph()
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 18, Y: 0}})
	g.AddEdge(geom2d.LineString{{X: 20, Y: 0}, {X: 40, Y: 0}})

	refine.ReconnectDirectionalBreaks(g, boundary, p)
	assert.Equal(t, 3, g.EdgeCount())
}

func TestSmoothByDirectionFieldPreservesEdgeCount(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6})
	g := core.NewGraph()
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 20, Y: 0}})
	g.AddEdge(geom2d.LineString{{X: 20, Y: 0}, {X: 40, Y: 0.1}})

	out := refine.SmoothByDirectionField(g, p)
	assert.Equal(t, 2, out.EdgeCount())
}
