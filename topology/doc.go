// Package topology normalizes a pruned, smoothed skeleton graph into a
// clean road network: snap coordinates, planarize, contract short
// intersection bridges, drop terminal forks and spurs, smooth junction
// vertices, merge false nodes, and simplify with a degree-adaptive
// Douglas-Peucker tolerance (spec §4.11). Grounded on
// original_source/Service/gis_modules/topology/{processor,strategies,cleaners,diagnostics}.py.
//
// Every stage operates on a plain []geom2d.LineString rather than a
// GeoDataFrame: stages that need topology (degree, connectivity) build a
// throwaway core.Graph internally and flatten back to lines before
// returning, matching the source's per-stage networkx build/extract
// rhythm.
package topology

import (
	"math"

	"github.com/dkovalov/roadskeleton/geom2d"
)

// Config carries the user-tunable thresholds for this package's stages
// (spec §9's GISConfig fields topology_intersection_merge_threshold_m,
// topology_intersection_parallel_angle_deg, topology_simplify_main_tolerance_m,
// topology_simplify_junction_tolerance_m, topology_junction_min_degree).
// The remaining per-stage constants (fork/spur/smoother thresholds) are
// not exposed as config in the source either, so they stay package
// constants here too.
type Config struct {
	IntersectionMergeThresholdM  float64
	IntersectionParallelAngleDeg float64
	SimplifyMainToleranceM       float64
	SimplifyJunctionToleranceM   float64
	JunctionMinDegree            int
	DebugExportIntermediate      bool
}

// DefaultConfig returns the GISConfig defaults named in spec §9.
func DefaultConfig() Config {
	return Config{
		IntersectionMergeThresholdM:  1.5,
		IntersectionParallelAngleDeg: 15.0,
		SimplifyMainToleranceM:       0.05,
		SimplifyJunctionToleranceM:   0.12,
		JunctionMinDegree:            3,
	}
}

const (
	terminalForkBoundaryThresholdM       = 0.8
	terminalForkMaxForkLenM              = 25.0
	terminalForkMaxHookLenM              = 4.0
	spurCleanerMaxSpurLenM               = 2.5
	intersectionSmootherClearanceRadius = 2.0
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// acosUnsignedDeg returns the unsigned angle in degrees between two unit
// vectors, folding the obtuse case onto [0,90] the way the source's
// abs(dot) does (a corridor is "parallel" whether the two directions
// point the same way or opposite).
func acosUnsignedDeg(a, b geom2d.Point) float64 {
	d := a.Dot(b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	if d < 0 {
		d = -d
	}
	return acosDeg(d)
}

func acosDeg(d float64) float64 {
	return math.Acos(d) * 180 / math.Pi
}
