package candidates_test

import (
	"math"
	"testing"

	"github.com/dkovalov/roadskeleton/candidates"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestVoronoiCandidatesOfLongRectangleRunsAlongAxis(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	part := rect(0, 0, 40, 6)
	ctx := geom2d.MultiPolygon{part}

	got := candidates.VoronoiCandidates(part, ctx, p)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Equal(t, "voronoi", c.Source)
		assert.GreaterOrEqual(t, len(c.Geometry), 2)
	}
}

func TestBoundaryPairCandidatesOfLongRectangleRunsAlongAxis(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	part := rect(0, 0, 40, 6)
	ctx := geom2d.MultiPolygon{part}

	got := candidates.BoundaryPairCandidates(part, ctx, p)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Equal(t, "boundary-pair", c.Source)
		start, end := c.Geometry[0], c.Geometry[len(c.Geometry)-1]
		assert.Greater(t, start.Dist(end), 0.0)
	}
}

func TestGenerateCombinesBothFamilies(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	part := rect(0, 0, 40, 6)
	ctx := geom2d.MultiPolygon{part}

	got := candidates.Generate(part, ctx, p)
	var sawVoronoi, sawPair bool
	for _, c := range got {
		if c.Source == "voronoi" {
			sawVoronoi = true
		}
		if c.Source == "boundary-pair" {
			sawPair = true
		}
	}
	assert.True(t, sawVoronoi)
	assert.True(t, sawPair)
}

func TestBoundaryPairCandidatesRejectPinchNarrowerThanMinLaneWidth(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	require.InDelta(t, 1.4, p.MinLaneWidthM, 1e-9)

	// A 6m-wide rectangle pinched down to 1.0m around x=20, well under the
	// 1.4m MinLaneWidthM gate for this width distribution. The top edge
	// there is y = 1 + |x-20|, so the part is narrower than a lane only for
	// |x-20| < 0.4. A boundary-pair chain must not thread through the pinch:
	// buckets there are dropped outright, so no candidate geometry should
	// carry a point in that stretch, and the wide sections on either side
	// must end up as separate candidates rather than one continuous line
	// crossing the gap.
	part := geom2d.Polygon{Exterior: geom2d.Ring{
		{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 6},
		{X: 25, Y: 6}, {X: 20, Y: 1.0}, {X: 15, Y: 6},
		{X: 0, Y: 6},
	}}
	ctx := geom2d.MultiPolygon{part}

	got := candidates.BoundaryPairCandidates(part, ctx, p)
	require.NotEmpty(t, got)

	for _, c := range got {
		assert.Equal(t, "boundary-pair", c.Source)
		for _, pt := range c.Geometry {
			assert.Greater(t, math.Abs(pt.X-20), 0.4, "candidate geometry must not thread through the sub-lane-width pinch")
		}
	}

	// The pinch splits the surviving midpoints into disjoint runs on
	// either side of x=20; they must not be stitched into one chain.
	assert.GreaterOrEqual(t, len(got), 2)
}

func TestVoronoiCandidatesOnNarrowSliverYieldsNone(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	part := rect(0, 0, 10, 0.2)
	ctx := geom2d.MultiPolygon{part}

	got := candidates.VoronoiCandidates(part, ctx, p)
	assert.Empty(t, got)
}
