package pruner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
	"github.com/dkovalov/roadskeleton/pruner"
)

func buildGraphWithSpur(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddNode(geom2d.Point{X: 0, Y: 0}, 2.0)
	g.AddNode(geom2d.Point{X: 20, Y: 0}, 2.0)
	g.AddNode(geom2d.Point{X: 10, Y: 0}, 2.0)
	g.AddNode(geom2d.Point{X: 10, Y: 1}, 0.1)
	_, err := g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.NoError(t, err)
	_, err = g.AddEdge(geom2d.LineString{{X: 10, Y: 0}, {X: 20, Y: 0}})
	require.NoError(t, err)
	_, err = g.AddEdge(geom2d.LineString{{X: 10, Y: 0}, {X: 10, Y: 1}})
	require.NoError(t, err)
	return g
}

func TestSpurPruneRemovesShortBranchAtJunction(t *testing.T) {
	g := buildGraphWithSpur(t)
	p := policy.FromWidthDistribution([]float64{6})
	pruner.SpurPrune(g, p)

	require.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasNode("10.000,1.000"))
}

func TestComponentPruneDropsTinyIsolatedChain(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})
	p := policy.FromWidthDistribution([]float64{6})
	pruner.ComponentPrune(g, p)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestComponentPruneKeepsLongChain(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 100, Y: 0}})
	p := policy.FromWidthDistribution([]float64{6})
	pruner.ComponentPrune(g, p)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRatioPruneRemovesShortLeafRelativeToRadius(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(geom2d.Point{X: 0, Y: 0}, 0.1)
	g.AddNode(geom2d.Point{X: 10, Y: 0}, 5.0)
	g.AddNode(geom2d.Point{X: 20, Y: 0}, 0.1)
	g.AddNode(geom2d.Point{X: 10, Y: 2}, 0.1)
	g.AddEdge(geom2d.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}})
	g.AddEdge(geom2d.LineString{{X: 10, Y: 0}, {X: 20, Y: 0}})
	g.AddEdge(geom2d.LineString{{X: 10, Y: 0}, {X: 10, Y: 2}})

	p := policy.FromWidthDistribution([]float64{6})
	pruner.RatioPrune(g, p)
	assert.False(t, g.HasNode("10.000,2.000"))
	assert.True(t, g.HasNode("0.000,0.000"))
	assert.True(t, g.HasNode("20.000,0.000"))
}
