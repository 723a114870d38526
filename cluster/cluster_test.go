package cluster_test

import (
	"testing"

	"github.com/dkovalov/roadskeleton/cluster"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/stretchr/testify/assert"
)

func rect(x0, y0, x1, y1 float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestAdjacentRectanglesShareBoundaryAndAxis(t *testing.T) {
	a := rect(0, 0, 20, 5)
	b := rect(20, 0, 40, 5)
	f := cluster.ComputeFeature(a, b, 3, 0.3)
	assert.InDelta(t, 0, f.DistanceM, 1e-6)
	assert.Greater(t, f.AxisSim, 0.9)
}

func TestGroupMergesSharedEdgeRectangles(t *testing.T) {
	polys := []geom2d.Polygon{
		rect(0, 0, 20, 5),
		rect(20, 0, 40, 5),
		rect(1000, 1000, 1010, 1005),
	}
	groups := cluster.Group(polys, 0.3, 3)
	assert.Len(t, groups, 2)
}

func TestGroupAbsorbsTransitiveBridgeAcrossSeeds(t *testing.T) {
	// A and C don't touch; B bridges both. In index order A(0), C(1), B(2),
	// a single forward pass would seed C into its own cluster before B ever
	// gets a chance to make it reachable. Group must rescan after each
	// absorption so all three end up in one cluster.
	a := rect(0, 0, 20, 5)
	c := rect(40, 0, 60, 5)
	b := rect(20, 0, 40, 5)
	groups := cluster.Group([]geom2d.Polygon{a, c, b}, 0.3, 3)
	assert.Len(t, groups, 1)
	assert.ElementsMatch(t, []int{0, 1, 2}, groups[0])
}

func TestDissimilarCloseRectanglesAreVetoed(t *testing.T) {
	a := rect(0, 0, 20, 5)
	b := rect(21, 0, 26, 20)
	f := cluster.ComputeFeature(a, b, 3, 0.3)
	assert.True(t, f.VetoDissimilar)
	assert.LessOrEqual(t, f.SharedRatio, 1.0)
}
