package geom2d_test

import (
	"math"
	"testing"

	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) geom2d.Polygon {
	return geom2d.Polygon{Exterior: geom2d.Ring{
		{0, 0}, {side, 0}, {side, side}, {0, side},
	}}
}

func TestLengthAndInterpolate(t *testing.T) {
	ls := geom2d.LineString{{0, 0}, {10, 0}}
	require.InDelta(t, 10, geom2d.Length(ls), 1e-9)

	mid := geom2d.Interpolate(ls, 0.5, true)
	assert.InDelta(t, 5, mid.X, 1e-9)

	mid2 := geom2d.Interpolate(ls, 5, false)
	assert.InDelta(t, 5, mid2.X, 1e-9)
}

func TestDensifyInsertsPoints(t *testing.T) {
	r := geom2d.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := geom2d.Densify(r, 2)
	assert.Greater(t, len(out), len(r))
}

func TestResample(t *testing.T) {
	ls := geom2d.LineString{{0, 0}, {20, 0}}
	out := geom2d.Resample(ls, 5)
	require.Len(t, out, 5)
	assert.InDelta(t, 0, out[0].X, 1e-9)
	assert.InDelta(t, 20, out[len(out)-1].X, 1e-9)
}

func TestConvexHullSquare(t *testing.T) {
	pts := []geom2d.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	hull := geom2d.ConvexHull(pts)
	assert.Len(t, hull, 4)
}

func TestMinRotatedRectangleRectangleIsExact(t *testing.T) {
	poly := geom2d.Polygon{Exterior: geom2d.Ring{{0, 0}, {20, 0}, {20, 6}, {0, 6}}}
	rect := geom2d.MinRotatedRectangle(poly)
	assert.InDelta(t, 6, rect.ShortEdge(), 1e-6)
	assert.InDelta(t, 20, rect.LongEdge(), 1e-6)
}

func TestAreaAndPointInPolygon(t *testing.T) {
	poly := square(10)
	assert.InDelta(t, 100, geom2d.AbsArea(poly.Exterior), 1e-9)
	assert.True(t, geom2d.PointInPolygon(geom2d.Point{5, 5}, poly))
	assert.False(t, geom2d.PointInPolygon(geom2d.Point{15, 5}, poly))
}

func TestDistanceToBoundary(t *testing.T) {
	poly := square(10)
	d := geom2d.DistanceToBoundary(geom2d.Point{5, 5}, poly)
	assert.InDelta(t, 5, d, 1e-9)
}

func TestSimplifyRemovesCollinearPoints(t *testing.T) {
	ls := geom2d.LineString{{0, 0}, {5, 0.001}, {10, 0}}
	out := geom2d.Simplify(ls, 0.01)
	assert.Len(t, out, 2)
}

func TestSimplifyKeepsSignificantBend(t *testing.T) {
	ls := geom2d.LineString{{0, 0}, {5, 5}, {10, 0}}
	out := geom2d.Simplify(ls, 0.01)
	assert.Len(t, out, 3)
}

func TestBufferErodeThenDilateRoundTripsArea(t *testing.T) {
	poly := square(20)
	eroded := geom2d.Buffer(poly, -1)
	require.NotEmpty(t, eroded)
	dilated := geom2d.Buffer(eroded[0], 1)
	require.NotEmpty(t, dilated)
	area := geom2d.AbsArea(dilated[0].Exterior)
	assert.InDelta(t, 400, area, 40)
}

func TestUnionMergesOverlappingSquares(t *testing.T) {
	a := square(10)
	b := geom2d.Polygon{Exterior: geom2d.Ring{{5, 0}, {15, 0}, {15, 10}, {5, 10}}}
	merged := geom2d.Union([]geom2d.Polygon{a, b})
	require.Len(t, merged, 1)
	assert.Greater(t, geom2d.AbsArea(merged[0].Exterior), 100.0)
}

func TestUnionKeepsDisjointSeparate(t *testing.T) {
	a := square(5)
	b := geom2d.Polygon{Exterior: geom2d.Ring{{100, 100}, {105, 100}, {105, 105}, {100, 105}}}
	merged := geom2d.Union([]geom2d.Polygon{a, b})
	assert.Len(t, merged, 2)
}

func TestPlanarizeSplitsCrossingLines(t *testing.T) {
	lines := []geom2d.LineString{
		{{0, 5}, {10, 5}},
		{{5, 0}, {5, 10}},
	}
	out := geom2d.Planarize(lines)
	assert.GreaterOrEqual(t, len(out), 4)
}

func TestPlanarizeIdempotent(t *testing.T) {
	lines := []geom2d.LineString{
		{{0, 5}, {10, 5}},
		{{5, 0}, {5, 10}},
	}
	once := geom2d.Planarize(lines)
	twice := geom2d.Planarize(once)
	assert.Equal(t, len(once), len(twice))
}

func TestVoronoiRidgesOfSquareGridIsNonEmpty(t *testing.T) {
	var pts []geom2d.Point
	for x := 0.0; x <= 10; x += 2 {
		for y := 0.0; y <= 10; y += 2 {
			pts = append(pts, geom2d.Point{X: x, Y: y})
		}
	}
	ridges := geom2d.VoronoiRidges(pts)
	assert.NotEmpty(t, ridges)
}

func TestClipLineToPolygonKeepsInsidePortion(t *testing.T) {
	poly := square(10)
	ls := geom2d.LineString{{-5, 5}, {15, 5}}
	pieces := geom2d.ClipLineToPolygon(ls, poly)
	require.Len(t, pieces, 1)
	assert.InDelta(t, 10, geom2d.Length(pieces[0]), 1e-6)
}

func TestInsideRatioFullyInside(t *testing.T) {
	poly := square(10)
	ls := geom2d.LineString{{1, 5}, {9, 5}}
	ratio := geom2d.InsideRatio(ls, poly, 1)
	assert.InDelta(t, 1.0, ratio, 1e-9)
}

func TestInsideRatioHalfInside(t *testing.T) {
	poly := square(10)
	ls := geom2d.LineString{{5, 5}, {25, 5}}
	ratio := geom2d.InsideRatio(ls, poly, 1)
	assert.True(t, ratio < 0.6 && ratio > 0.1)
}

func TestPointRound(t *testing.T) {
	p := geom2d.Point{X: 1.23456, Y: 9.87654}
	r := p.Round(3)
	assert.InDelta(t, 1.235, r.X, 1e-9)
	assert.InDelta(t, 9.877, r.Y, 1e-9)
}

func TestRightNormalIsPerpendicular(t *testing.T) {
	v := geom2d.Point{X: 1, Y: 0}
	n := v.RightNormal()
	assert.InDelta(t, 0, v.Dot(n), 1e-9)
	assert.InDelta(t, 1, math.Hypot(n.X, n.Y), 1e-9)
}
