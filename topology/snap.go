package topology

import "github.com/dkovalov/roadskeleton/geom2d"

// SnapCoordinates rounds every coordinate to geom2d.Precision decimals and
// drops consecutive duplicate points, the first step of topology
// normalization (spec §4.11 "Snap"). A line left with fewer than two
// points after dedup is returned unchanged, matching
// CoordinateSnapper._round_line's fallback.
func SnapCoordinates(lines []geom2d.LineString) []geom2d.LineString {
	out := make([]geom2d.LineString, len(lines))
	for i, ln := range lines {
		out[i] = snapLine(ln)
	}
	return out
}

func snapLine(ln geom2d.LineString) geom2d.LineString {
	if len(ln) == 0 {
		return ln
	}
	rounded := make(geom2d.LineString, 0, len(ln))
	for _, p := range ln {
		rp := p.Round(geom2d.Precision)
		if len(rounded) > 0 && rounded[len(rounded)-1] == rp {
			continue
		}
		rounded = append(rounded, rp)
	}
	if len(rounded) < 2 {
		return ln
	}
	return rounded
}
