// Package cluster scores pairwise polygon-adjacency features (distance,
// shared-boundary ratio, long-axis similarity) and grows greedy clusters
// from them — the road-unit grouping step of skeleton preprocessing
// (spec §4.2). Grounded on
// original_source/Service/gis_modules/skeleton/topology_cluster.py's
// EdgeFeature/TopologyClusterer.
package cluster

import "github.com/dkovalov/roadskeleton/geom2d"

// Feature holds the pairwise adjacency signal between two polygon parts.
type Feature struct {
	DistanceM    float64
	SharedRatio  float64
	AxisSim      float64
	Score        float64
	VetoDissimilar bool
}

// sampleStep controls the density used to approximate shared-boundary
// length between two polygons' exteriors.
const sampleStep = 0.5

// closeTol is the distance under which two boundary samples are
// considered coincident ("shared edge").
const closeTol = 0.25

// ComputeFeature computes the Feature between polygons a and b, given the
// distance threshold (dist_th) and shared-boundary-ratio high-water mark
// (shared_hi) from spec §4.2.
func ComputeFeature(a, b geom2d.Polygon, distTh, sharedHi float64) Feature {
	dist := boundaryDistance(a, b)
	shared := sharedBoundaryRatio(a, b)
	axisSim := axisSimilarity(a, b)

	veto := dist <= distTh && shared < sharedHi/2 && axisSim < 0.55

	score := 1.2*(shared/max(sharedHi, 1e-9)) + 0.9*axisSim + 0.3*max0(1-dist/max(distTh, 1e-9))
	if veto {
		score -= 2.0
	}

	return Feature{
		DistanceM:      dist,
		SharedRatio:    shared,
		AxisSim:        axisSim,
		Score:          score,
		VetoDissimilar: veto,
	}
}

// CanAttach reports whether feature f justifies attaching its "b" polygon
// to a cluster already containing its "a" polygon, per spec §4.2's three
// alternative rules, subject to the close-but-dissimilar veto.
func CanAttach(f Feature, sharedHi float64, distTh float64) bool {
	if f.VetoDissimilar {
		return false
	}
	if f.SharedRatio >= sharedHi && f.AxisSim >= 0.55 {
		return true
	}
	if f.SharedRatio >= sharedHi/2 && f.AxisSim >= 0.75 && f.DistanceM <= distTh {
		return true
	}
	if f.Score >= 1.8 {
		return true
	}
	return false
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func axisSimilarity(a, b geom2d.Polygon) float64 {
	ra := geom2d.MinRotatedRectangle(a)
	rb := geom2d.MinRotatedRectangle(b)
	dot := ra.LongAxis.Dot(rb.LongAxis)
	if dot < 0 {
		dot = -dot
	}
	return dot
}

func boundaryDistance(a, b geom2d.Polygon) float64 {
	best := 1e18
	for _, p := range a.Exterior {
		d := geom2d.DistanceToBoundary(p, b)
		if d < best {
			best = d
		}
	}
	for _, p := range b.Exterior {
		d := geom2d.DistanceToBoundary(p, a)
		if d < best {
			best = d
		}
	}
	return best
}

func perimeter(p geom2d.Polygon) float64 {
	return geom2d.Length(p.Exterior.Closed())
}

func sharedBoundaryRatio(a, b geom2d.Polygon) float64 {
	closeCount := 0
	total := 0
	ra := geom2d.Densify(a.Exterior, sampleStep)
	for _, p := range ra {
		total++
		if geom2d.DistanceToBoundary(p, b) <= closeTol {
			closeCount++
		}
	}
	if total == 0 {
		return 0
	}
	sharedLen := float64(closeCount) / float64(total) * perimeter(a)
	minPerim := perimeter(a)
	if pb := perimeter(b); pb < minPerim {
		minPerim = pb
	}
	if minPerim < 1e-9 {
		return 0
	}
	ratio := sharedLen / minPerim
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}
