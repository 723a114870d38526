package preprocess_test

import (
	"testing"

	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
	"github.com/dkovalov/roadskeleton/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(x0, y0, x1, y1 float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
}

func TestMergePolygonsJoinsSharedEdge(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{5, 5, 5})
	merged := preprocess.MergePolygons([]geom2d.Polygon{
		rect(0, 0, 20, 5),
		rect(20, 0, 40, 5),
	}, p)
	require.Len(t, merged, 1)
}

func TestMergePolygonsKeepsFarApartSeparate(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{5, 5, 5})
	merged := preprocess.MergePolygons([]geom2d.Polygon{
		rect(0, 0, 20, 5),
		rect(1000, 1000, 1020, 1005),
	}, p)
	assert.Len(t, merged, 2)
}

func TestStabilizeDropsNarrowPolygon(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6})
	narrow := geom2d.MultiPolygon{rect(0, 0, 10, 0.1)}
	out := preprocess.Stabilize(narrow, p)
	assert.Empty(t, out)
}

func TestStabilizeKeepsWideRectangle(t *testing.T) {
	p := policy.FromWidthDistribution([]float64{6})
	wide := geom2d.MultiPolygon{rect(0, 0, 20, 6)}
	out := preprocess.Stabilize(wide, p)
	require.Len(t, out, 1)
}
