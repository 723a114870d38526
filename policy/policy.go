// Package policy derives the numeric thresholds every downstream skeleton
// stage reads from, scaling every field off the observed road-width
// distribution. See SkeletonPolicy for the full field list and
// DESIGN.md for the clamp-table grounding and the added selector fields.
package policy

import (
	"math"
	"sort"
)

// Regime tags the coarse urban/rural threshold profile a policy was
// derived under.
type Regime string

const (
	Urban Regime = "urban"
	Rural Regime = "rural"
)

// DefaultMedianWidth is substituted when no width samples are available
// (spec §4.12(d), "Policy default").
const DefaultMedianWidth = 8.0

// SkeletonPolicy is the immutable set of thresholds every skeleton and
// topology stage is parameterized by. Every field is derived once, from
// the median observed road width, via clamp(c*median, lo, hi) or a
// regime-only constant; see DESIGN.md for the full per-field grounding.
type SkeletonPolicy struct {
	Regime       Regime
	MedianWidthM float64

	MinLaneWidthM           float64
	VoronoiDensityIntervalM float64
	ProtrusionCleanM        float64
	SharpAngleSimplifyM     float64
	PairSampleStepM         float64
	PairAxisBinM            float64
	ReconnectSearchRadiusM  float64
	PostprocessMinLenM      float64
	ResampleStepM           float64

	MergeSharedRatioTh          float64
	MergeDistanceMinM           float64
	MergeDistanceLaneWidthRatio float64

	PairSegmentBreakBinRatio float64
	BoundarySampleMinStepM   float64

	GraphSmoothIterations   int
	GraphSmoothAlpha        float64
	GraphSmoothTargetShiftM float64
	DirectionSmoothWindow   int
	ResampleMinStepM        float64

	ReconnectAngleDeg       float64
	ReconnectBoundaryBufM   float64
	ReconnectMinInsideRatio float64

	ParallelCloseDistFactor float64
	ParallelAngleDeg        float64
	ParallelOffsetFactor    float64

	PruneRatioLimit float64

	BoundaryMinRadiusHitM             float64
	BoundaryMaxHitRatio               float64
	BoundaryMaxAbsHits                int
	BoundaryHardMinRadiusM            float64
	BoundaryRemoveLeafEdgesCount      int
	BoundaryProtectComponentMinLenM   float64
	BoundaryProtectComponentMaxRadius float64

	ComponentMinTotalLenM     float64
	ComponentProtectMaxRadius float64

	SpurAbsMaxLenM float64
	SpurRelRatio   float64

	// Added: not present in the source dataclass (see DESIGN.md Open
	// Question resolutions), but referenced by the selection stage and
	// required by the external interface (spec §3, §6).
	SelectorMinQualityScore   float64
	SelectorKeepTopRatio      float64
	SelectorLengthRefFactor   float64
	SelectorInsideSampleStepM float64
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pick(rural bool, urbanVal, ruralVal float64) float64 {
	if rural {
		return ruralVal
	}
	return urbanVal
}

func pickInt(rural bool, urbanVal, ruralVal int) int {
	if rural {
		return ruralVal
	}
	return urbanVal
}

// FromWidthDistribution derives a SkeletonPolicy from a set of observed
// road widths (the short edge of each input polygon's minimum rotated
// rectangle). An empty input synthesizes DefaultMedianWidth (spec §4.12(d)).
func FromWidthDistribution(widths []float64) SkeletonPolicy {
	median := DefaultMedianWidth
	if len(widths) > 0 {
		median = medianOf(widths)
	}

	rural := median >= 12
	regime := Urban
	if rural {
		regime = Rural
	}
	m := median

	return SkeletonPolicy{
		Regime:       regime,
		MedianWidthM: median,

		MinLaneWidthM:           clamp(0.12*m, 1.4, 3.5),
		VoronoiDensityIntervalM: clamp(0.08*m, 0.35, 1.2),
		ProtrusionCleanM:        clamp(0.02*m, 0.15, 0.5),
		SharpAngleSimplifyM:     clamp(0.018*m, 0.1, 0.45),
		PairSampleStepM:         clamp(0.16*m, 1.0, 3.0),
		PairAxisBinM:            clamp(0.10*m, 0.8, 2.0),
		ReconnectSearchRadiusM:  clamp(0.9*m, 4.0, 14.0),
		PostprocessMinLenM:      clamp(0.15*m, 1.0, 4.0),
		ResampleStepM:           clamp(0.12*m, 0.8, 2.5),

		MergeSharedRatioTh:          clamp(pick(rural, 0.08, 0.06), 0.04, 0.15),
		MergeDistanceMinM:           clamp(0.5, 0.1, 2.0),
		MergeDistanceLaneWidthRatio: clamp(0.7, 0.2, 2.0),

		PairSegmentBreakBinRatio: clamp(3.0, 1.0, 10.0),
		BoundarySampleMinStepM:   clamp(0.5, 0.1, 2.0),

		GraphSmoothIterations:   pickInt(rural, 2, 3),
		GraphSmoothAlpha:        pick(rural, 0.35, 0.30),
		GraphSmoothTargetShiftM: clamp(0.5, 0.1, 2.0),
		DirectionSmoothWindow:   pickInt(rural, 4, 5),
		ResampleMinStepM:        clamp(0.4, 0.1, 2.0),

		ReconnectAngleDeg:       pick(rural, 20, 25),
		ReconnectBoundaryBufM:   clamp(0.05*m, 0.1, 1.0),
		ReconnectMinInsideRatio: clamp(0.97, 0.8, 1.0),

		ParallelCloseDistFactor: clamp(0.8, 0.5, 1.2),
		ParallelAngleDeg:        clamp(12.0, 5.0, 25.0),
		ParallelOffsetFactor:    clamp(0.2, 0.05, 0.5),

		PruneRatioLimit: pick(rural, 1.3, 1.8),

		BoundaryMinRadiusHitM:             clamp(pick(rural, 0.22, 0.12), 0.05, 0.6),
		BoundaryMaxHitRatio:               clamp(pick(rural, 0.30, 0.45), 0.1, 0.8),
		BoundaryMaxAbsHits:                pickInt(rural, 4, 3),
		BoundaryHardMinRadiusM:            clamp(0.05, 0.01, 0.2),
		BoundaryRemoveLeafEdgesCount:      2,
		BoundaryProtectComponentMinLenM:   clamp(30.0, 5.0, 120.0),
		BoundaryProtectComponentMaxRadius: clamp(1.0, 0.2, 4.0),

		ComponentMinTotalLenM:     clamp(pick(rural, 18.0, 10.0), 3.0, 80.0),
		ComponentProtectMaxRadius: clamp(1.0, 0.2, 4.0),

		SpurAbsMaxLenM: clamp(pick(rural, 3.5, 2.0), 0.5, 10.0),
		SpurRelRatio:   clamp(pick(rural, 0.25, 0.15), 0.05, 0.6),

		SelectorMinQualityScore:   clamp(0.015*m+0.30, 0.32, 0.55),
		SelectorKeepTopRatio:      clamp(0.65-0.01*m, 0.25, 0.5),
		SelectorLengthRefFactor:   2.5,
		SelectorInsideSampleStepM: clamp(0.1*m, 0.3, 1.0),
	}
}

func medianOf(widths []float64) float64 {
	cp := append([]float64{}, widths...)
	sort.Float64s(cp)
	n := len(cp)
	return cp[n/2]
}

// Clamp3 rounds v to 3 decimal places, the coordinate precision used
// throughout the graph stages (spec §6, §9(c)).
func Clamp3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
