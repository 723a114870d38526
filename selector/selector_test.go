package selector_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovalov/roadskeleton/candidates"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
	"github.com/dkovalov/roadskeleton/selector"
)

func rect(x0, y0, x1, y1 float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestSelectKeepsCenteredStraightLine(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	part := rect(0, 0, 40, 6)
	ctx := geom2d.MultiPolygon{part}

	good := candidates.Candidate{
		Source:   "voronoi",
		Geometry: geom2d.LineString{{X: 0, Y: 3}, {X: 40, Y: 3}},
	}
	bad := candidates.Candidate{
		Source:   "voronoi",
		Geometry: geom2d.LineString{{X: 0, Y: 0.05}, {X: 40, Y: 0.05}},
	}

	got := selector.Select(zerolog.Nop(), []candidates.Candidate{good, bad}, ctx, p, "test-group")
	require.NotEmpty(t, got)
	foundGood := false
	for _, c := range got {
		if c.Geometry[0].Y == 3 {
			foundGood = true
		}
	}
	assert.True(t, foundGood)
}

func TestSelectSuppressesNearParallelDuplicate(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6, 6, 6})
	part := rect(0, 0, 40, 6)
	ctx := geom2d.MultiPolygon{part}

	a := candidates.Candidate{Source: "voronoi", Geometry: geom2d.LineString{{X: 0, Y: 3}, {X: 40, Y: 3}}}
	b := candidates.Candidate{Source: "boundary-pair", Geometry: geom2d.LineString{{X: 0, Y: 3.05}, {X: 40, Y: 3.05}}}

	got := selector.Select(zerolog.Nop(), []candidates.Candidate{a, b}, ctx, p, "test-group")
	assert.Len(t, got, 1)
}

func TestSelectOnEmptyInputReturnsNil(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6})
	got := selector.Select(zerolog.Nop(), nil, nil, p, "empty-group")
	assert.Nil(t, got)
}
