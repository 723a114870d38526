// Package refine separates overlapping near-parallel edges, reconnects
// broken colinear endpoints, and smooths the graph by its local direction
// field (spec §4.9, §4.10). Grounded on
// original_source/Service/gis_modules/skeleton/graph_builder.py's
// separate_parallel_and_reconnect and smooth_by_direction_field, with
// thresholds generalized to policy fields and the shift direction
// corrected to the right-hand unit normal per spec §4.9 (the source
// shifts diagonally by a fixed (offset, offset), which is not a geometric
// lateral translation).
package refine

import (
	"math"

	"github.com/dkovalov/roadskeleton/geom2d"
)

func edgeDir(geom geom2d.LineString) geom2d.Point {
	return geom[len(geom)-1].Sub(geom[0]).Unit()
}

func angleBetweenDeg(a, b geom2d.Point) float64 {
	an, bn := a.Norm(), b.Norm()
	if an < geom2d.Eps || bn < geom2d.Eps {
		return 180
	}
	dot := a.Dot(b) / (an * bn)
	if dot < -1 {
		dot = -1
	}
	if dot > 1 {
		dot = 1
	}
	return math.Abs(math.Acos(dot)) * 180 / math.Pi
}

func insideRatioMulti(seg geom2d.LineString, mp geom2d.MultiPolygon) float64 {
	total := geom2d.Length(seg)
	if total < geom2d.Eps {
		return 0
	}
	var insideLen float64
	for _, pc := range geom2d.ClipLineToMultiPolygon(seg, mp) {
		insideLen += geom2d.Length(pc)
	}
	return insideLen / total
}

func bufferAll(mp geom2d.MultiPolygon, dist float64) geom2d.MultiPolygon {
	var out geom2d.MultiPolygon
	for _, part := range mp {
		out = append(out, geom2d.Buffer(part, dist)...)
	}
	return out
}
