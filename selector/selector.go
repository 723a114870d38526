// Package selector scores and filters candidate centerlines down to the
// set that feeds graph construction (spec §4.6). Grounded on
// original_source/Service/gis_modules/skeleton/selector.py's
// SkeletonCandidateSelector.
package selector

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/candidates"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/policy"
)

type scored struct {
	score float64
	cand  candidates.Candidate
}

// Select scores every candidate, keeps those clearing
// policy.SelectorMinQualityScore (falling back to the top
// SelectorKeepTopRatio fraction if none clear the bar), then suppresses
// near-parallel duplicates among the survivors (spec §4.6).
func Select(log zerolog.Logger, lines []candidates.Candidate, context geom2d.MultiPolygon, p policy.SkeletonPolicy, groupName string) []candidates.Candidate {
	var all []scored
	for _, c := range lines {
		if len(c.Geometry) < 2 || geom2d.Length(c.Geometry) <= 0 {
			continue
		}
		all = append(all, scored{score: qualityScore(c.Geometry, context, p), cand: c})
	}
	if len(all) == 0 {
		return nil
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	var qualityFiltered []scored
	for _, s := range all {
		if s.score >= p.SelectorMinQualityScore {
			qualityFiltered = append(qualityFiltered, s)
		}
	}

	pool := qualityFiltered
	if len(pool) == 0 {
		keep := int(math.Ceil(float64(len(all)) * p.SelectorKeepTopRatio))
		if keep < 1 {
			keep = 1
		}
		if keep > len(all) {
			keep = len(all)
		}
		pool = all[:keep]
	}

	selected := suppressNearParallelDuplicates(pool, p)

	log.Info().
		Str("group", groupName).
		Int("input", len(lines)).
		Int("scored", len(all)).
		Int("quality_pass", len(qualityFiltered)).
		Int("pre_selected", len(pool)).
		Int("selected", len(selected)).
		Float64("min_quality", p.SelectorMinQualityScore).
		Float64("top_ratio", p.SelectorKeepTopRatio).
		Msg("selector: group scored")

	out := make([]candidates.Candidate, 0, len(selected))
	for _, s := range selected {
		out = append(out, s.cand)
	}
	return out
}

func qualityScore(line geom2d.LineString, context geom2d.MultiPolygon, p policy.SkeletonPolicy) float64 {
	inside := insideRatio(line, context, p)
	center := centerProximityScore(line, context, p)
	curv := curvaturePenalty(line)
	length := lengthScore(line, p)

	score := inside*0.45 + center*0.25 + (1.0-curv)*0.15 + length*0.15
	return clamp01(score)
}

func sampleCount(line geom2d.LineString, p policy.SkeletonPolicy) int {
	step := p.SelectorInsideSampleStepM
	if step < 0.1 {
		step = 0.1
	}
	n := int(math.Ceil(geom2d.Length(line)/step)) + 1
	if n < 3 {
		n = 3
	}
	return n
}

func insideRatio(line geom2d.LineString, context geom2d.MultiPolygon, p policy.SkeletonPolicy) float64 {
	if len(context) == 0 {
		return 0
	}
	n := sampleCount(line, p)
	total := geom2d.Length(line)
	hit := 0
	for i := 0; i < n; i++ {
		d := (float64(i) / float64(n-1)) * total
		pt := geom2d.Interpolate(line, d, false)
		if geom2d.PointInMultiPolygon(pt, context) || geom2d.DistanceToBoundaryMulti(pt, context) < geom2d.Eps {
			hit++
		}
	}
	return float64(hit) / float64(n)
}

func centerProximityScore(line geom2d.LineString, context geom2d.MultiPolygon, p policy.SkeletonPolicy) float64 {
	if len(context) == 0 {
		return 0
	}
	targetRadius := math.Max(p.MinLaneWidthM*0.5, 0.1)
	tolerance := math.Max(p.MinLaneWidthM*0.35, 0.2)
	n := sampleCount(line, p)
	total := geom2d.Length(line)

	var sum float64
	for i := 0; i < n; i++ {
		d := (float64(i) / float64(n-1)) * total
		pt := geom2d.Interpolate(line, d, false)
		dist := geom2d.DistanceToBoundaryMulti(pt, context)
		if dist >= targetRadius {
			sum += 1.0
		} else {
			sum += clamp01(dist / tolerance)
		}
	}
	return sum / float64(n)
}

func curvaturePenalty(line geom2d.LineString) float64 {
	if len(line) < 3 {
		return 0
	}
	var total float64
	turns := 0
	for i := 1; i < len(line)-1; i++ {
		a := line[i].Sub(line[i-1])
		b := line[i+1].Sub(line[i])
		na, nb := a.Norm(), b.Norm()
		if na < geom2d.Eps || nb < geom2d.Eps {
			continue
		}
		dot := clampUnit(a.Dot(b) / (na * nb))
		total += math.Acos(dot)
		turns++
	}
	if turns == 0 {
		return 0
	}
	return clamp01(total / (math.Pi * float64(turns)))
}

func lengthScore(line geom2d.LineString, p policy.SkeletonPolicy) float64 {
	target := math.Max(p.MinLaneWidthM*p.SelectorLengthRefFactor, p.PostprocessMinLenM)
	if target <= 0 {
		return 1.0
	}
	return clamp01(geom2d.Length(line) / target)
}

func suppressNearParallelDuplicates(pool []scored, p policy.SkeletonPolicy) []scored {
	minDistTh := math.Max(p.MinLaneWidthM*0.35, 0.4)
	maxAngleTh := math.Max(p.ParallelAngleDeg*0.8, 5.0)

	var out []scored
	for _, s := range pool {
		dup := false
		for _, kept := range out {
			if lineDistance(s.cand.Geometry, kept.cand.Geometry) > minDistTh {
				continue
			}
			if lineAngleDiffDeg(s.cand.Geometry, kept.cand.Geometry) > maxAngleTh {
				continue
			}
			dup = true
			break
		}
		if !dup {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(pool) > 0 {
		out = append(out, pool[0])
	}
	return out
}

func lineAngleDiffDeg(a, b geom2d.LineString) float64 {
	av := a[len(a)-1].Sub(a[0])
	bv := b[len(b)-1].Sub(b[0])
	an, bn := av.Norm(), bv.Norm()
	if an < geom2d.Eps || bn < geom2d.Eps {
		return 180
	}
	dot := clampUnit(av.Dot(bv) / (an * bn))
	return math.Abs(math.Acos(math.Abs(dot))) * 180 / math.Pi
}

// lineDistance approximates shapely's LineString.distance: the minimum
// point-to-segment distance from every vertex of one line to the other,
// checked both ways, with an early exit on any segment crossing.
func lineDistance(a, b geom2d.LineString) float64 {
	for i := 1; i < len(a); i++ {
		for j := 1; j < len(b); j++ {
			if _, ok := geom2d.SegmentIntersection(a[i-1], a[i], b[j-1], b[j]); ok {
				return 0
			}
		}
	}
	best := math.Inf(1)
	for _, pt := range a {
		for j := 1; j < len(b); j++ {
			if d := geom2d.DistToSegment(pt, b[j-1], b[j]); d < best {
				best = d
			}
		}
	}
	for _, pt := range b {
		for i := 1; i < len(a); i++ {
			if d := geom2d.DistToSegment(pt, a[i-1], a[i]); d < best {
				best = d
			}
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
