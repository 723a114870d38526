package core_test

import (
	"errors"
	"testing"

	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeCreatesNodesAndComputesLength(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 3, Y: 4}})
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.InDelta(t, 5, e.Length, 1e-9)
	assert.Equal(t, 2, g.NodeCount())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(geom2d.LineString{{X: 1, Y: 1}, {X: 1.0001, Y: 1.0001}})
	assert.True(t, errors.Is(err, core.ErrSelfLoop))
}

func TestAddEdgeRejectsDegenerateGeometry(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(geom2d.LineString{{X: 0, Y: 0}})
	assert.True(t, errors.Is(err, core.ErrDegenerateGeo))
}

func TestDegreeAndNeighbors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})
	_, _ = g.AddEdge(geom2d.LineString{{X: 1, Y: 0}, {X: 2, Y: 0}})
	_, _ = g.AddEdge(geom2d.LineString{{X: 1, Y: 0}, {X: 1, Y: 1}})

	junction := core.NodeKey(geom2d.Point{X: 1, Y: 0})
	assert.Equal(t, 3, g.Degree(junction))
	assert.Len(t, g.Neighbors(junction), 3)
}

func TestRemoveIsolatedNodes(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(geom2d.Point{X: 5, Y: 5}, 1)
	_, _ = g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})

	removed := g.RemoveIsolatedNodes()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, g.NodeCount())
}

func TestConnectedComponents(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})
	_, _ = g.AddEdge(geom2d.LineString{{X: 100, Y: 100}, {X: 101, Y: 100}})

	comps := g.ConnectedComponents()
	assert.Len(t, comps, 2)
}

func TestExportLinesIsDeterministic(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})
	_, _ = g.AddEdge(geom2d.LineString{{X: 1, Y: 0}, {X: 2, Y: 0}})

	a := g.ExportLines()
	b := g.ExportLines()
	assert.Equal(t, a, b)
}
