package skelgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/skelgraph"
)

func rect(x0, y0, x1, y1 float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestBuildCreatesNodesAndEdges(t *testing.T) {
	boundary := geom2d.MultiPolygon{rect(0, 0, 40, 6)}
	lines := []geom2d.LineString{
		{{X: 0, Y: 3}, {X: 20, Y: 3}},
		{{X: 20, Y: 3}, {X: 40, Y: 3}},
	}
	g := skelgraph.Build(lines, boundary)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildSkipsSelfLoop(t *testing.T) {
	boundary := geom2d.MultiPolygon{rect(0, 0, 40, 6)}
	lines := []geom2d.LineString{
		{{X: 5, Y: 3}, {X: 5, Y: 3}},
	}
	g := skelgraph.Build(lines, boundary)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestMergeDegree2NodesCollapsesChain(t *testing.T) {
	boundary := geom2d.MultiPolygon{rect(0, 0, 40, 6)}
	lines := []geom2d.LineString{
		{{X: 0, Y: 3}, {X: 20, Y: 3}},
		{{X: 20, Y: 3}, {X: 40, Y: 3}},
	}
	g := skelgraph.Build(lines, boundary)
	require.Equal(t, 3, g.NodeCount())

	skelgraph.MergeDegree2Nodes(g)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.InDelta(t, 40.0, edges[0].Length, 1e-6)
}

func TestMergeDegree2NodesLeavesJunctionsAlone(t *testing.T) {
	boundary := geom2d.MultiPolygon{rect(0, 0, 40, 40)}
	lines := []geom2d.LineString{
		{{X: 20, Y: 20}, {X: 0, Y: 20}},
		{{X: 20, Y: 20}, {X: 40, Y: 20}},
		{{X: 20, Y: 20}, {X: 20, Y: 0}},
	}
	g := skelgraph.Build(lines, boundary)
	skelgraph.MergeDegree2Nodes(g)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}
