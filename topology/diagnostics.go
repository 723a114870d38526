package topology

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

// DiagnosticsPolicy thresholds gate how deep Report inspects a finished
// network. Unlike Config's fields, these are not exposed through
// GISConfig in the source either — they stay a frozen dataclass with
// defaults there, so DefaultDiagnosticsPolicy mirrors that directly.
type DiagnosticsPolicy struct {
	BoundaryDistThresholdM  float64
	ShortEdgeThresholdM     float64
	SamplePoints            int
	TopNSuspects            int
	MaxEdgesForBoundaryScan int
}

// DefaultDiagnosticsPolicy mirrors diagnostics.py's TopologyDiagnosticsPolicy
// defaults.
func DefaultDiagnosticsPolicy() DiagnosticsPolicy {
	return DiagnosticsPolicy{
		BoundaryDistThresholdM:  0.25,
		ShortEdgeThresholdM:     3.0,
		SamplePoints:            5,
		TopNSuspects:            20,
		MaxEdgesForBoundaryScan: 20000,
	}
}

type edgeDiag struct {
	idx              int
	lengthM          float64
	minBoundaryDistM float64
	degU, degV       int
	isLeafEdge       bool
	isChainEdge      bool
}

// Report logs topology summary statistics, edge-length distribution, and
// boundary-proximity risk candidates — a read-only diagnostic pass, never
// a gate on the pipeline's output (spec §4.11 "Diagnostics", §4.12).
// Grounded on topology/diagnostics.py's TopologyDiagnostics.
func Report(log zerolog.Logger, lines []geom2d.LineString, boundary geom2d.MultiPolygon, p DiagnosticsPolicy) {
	if len(lines) == 0 {
		log.Warn().Msg("topology diagnostics: no edges to analyze")
		return
	}

	logGraphSummary(log, lines)
	logEdgeLengthSummary(log, lines)

	if len(lines) > p.MaxEdgesForBoundaryScan {
		log.Warn().Int("max_edges", p.MaxEdgesForBoundaryScan).
			Msg("topology diagnostics: boundary scan skipped, too many edges")
		return
	}
	if len(boundary) == 0 {
		log.Warn().Msg("topology diagnostics: no boundary available, skipping distance diagnostics")
		return
	}

	diag := buildEdgeDiagnostics(lines, boundary, p.SamplePoints)
	logBoundarySummary(log, diag, p.BoundaryDistThresholdM)
	logRiskCandidates(log, diag, p.BoundaryDistThresholdM, p.ShortEdgeThresholdM, p.TopNSuspects)
}

func buildSimpleGraph(lines []geom2d.LineString) *core.Graph {
	g := core.NewGraph()
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		g.AddEdge(ln)
	}
	return g
}

func logGraphSummary(log zerolog.Logger, lines []geom2d.LineString) {
	g := buildSimpleGraph(lines)
	var d1, d2, d3p int
	for _, n := range g.Nodes() {
		switch d := g.Degree(n.Key); {
		case d == 1:
			d1++
		case d == 2:
			d2++
		case d >= 3:
			d3p++
		}
	}
	log.Info().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Int("components", len(g.ConnectedComponents())).
		Int("degree1", d1).
		Int("degree2", d2).
		Int("degree3plus", d3p).
		Msg("topology diagnostics: graph summary")
}

func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := q * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func logEdgeLengthSummary(log zerolog.Logger, lines []geom2d.LineString) {
	lengths := make([]float64, 0, len(lines))
	for _, ln := range lines {
		lengths = append(lengths, geom2d.Length(ln))
	}
	sort.Float64s(lengths)
	log.Info().
		Float64("min", percentile(lengths, 0)).
		Float64("p05", percentile(lengths, 0.05)).
		Float64("p50", percentile(lengths, 0.50)).
		Float64("p95", percentile(lengths, 0.95)).
		Float64("max", percentile(lengths, 1)).
		Msg("topology diagnostics: edge length summary")
}

func buildEdgeDiagnostics(lines []geom2d.LineString, boundary geom2d.MultiPolygon, samplePoints int) []edgeDiag {
	degree := make(map[string]int)
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		degree[core.NodeKey(ln[0])]++
		degree[core.NodeKey(ln[len(ln)-1])]++
	}

	k := samplePoints
	if k < 1 {
		k = 1
	}
	out := make([]edgeDiag, 0, len(lines))
	for i, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		du := degree[core.NodeKey(ln[0])]
		dv := degree[core.NodeKey(ln[len(ln)-1])]
		out = append(out, edgeDiag{
			idx:              i,
			lengthM:          geom2d.Length(ln),
			minBoundaryDistM: minBoundaryDist(ln, boundary, k),
			degU:             du,
			degV:             dv,
			isLeafEdge:       du == 1 || dv == 1,
			isChainEdge:      maxInt(du, dv) <= 2,
		})
	}
	return out
}

func minBoundaryDist(ln geom2d.LineString, boundary geom2d.MultiPolygon, k int) float64 {
	if k <= 1 {
		p := geom2d.Interpolate(ln, 0.5, true)
		return geom2d.DistanceToBoundaryMulti(p, boundary)
	}
	best := math.Inf(1)
	for i := 0; i < k; i++ {
		t := float64(i) / float64(k-1)
		p := geom2d.Interpolate(ln, t, true)
		d := geom2d.DistanceToBoundaryMulti(p, boundary)
		if d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best
}

func logBoundarySummary(log zerolog.Logger, diag []edgeDiag, thresholdM float64) {
	if len(diag) == 0 {
		return
	}
	dists := make([]float64, len(diag))
	nearCnt, leafNear, chainNear := 0, 0, 0
	for i, d := range diag {
		dists[i] = d.minBoundaryDistM
		if d.minBoundaryDistM < thresholdM {
			nearCnt++
			if d.isLeafEdge {
				leafNear++
			}
			if d.isChainEdge {
				chainNear++
			}
		}
	}
	sort.Float64s(dists)
	log.Info().
		Float64("p05", percentile(dists, 0.05)).
		Float64("p50", percentile(dists, 0.50)).
		Float64("p95", percentile(dists, 0.95)).
		Float64("threshold_m", thresholdM).
		Int("near_count", nearCnt).
		Int("leaf_near", leafNear).
		Int("chain_near", chainNear).
		Msg("topology diagnostics: boundary proximity summary")
}

func logRiskCandidates(log zerolog.Logger, diag []edgeDiag, thresholdBdM, thresholdLenM float64, topN int) {
	var cand []edgeDiag
	for _, d := range diag {
		if d.minBoundaryDistM < thresholdBdM && d.lengthM < thresholdLenM {
			cand = append(cand, d)
		}
	}
	sort.Slice(cand, func(i, j int) bool {
		if cand[i].minBoundaryDistM != cand[j].minBoundaryDistM {
			return cand[i].minBoundaryDistM < cand[j].minBoundaryDistM
		}
		return cand[i].lengthM < cand[j].lengthM
	})
	log.Info().
		Float64("boundary_threshold_m", thresholdBdM).
		Float64("length_threshold_m", thresholdLenM).
		Int("candidate_count", len(cand)).
		Msg("topology diagnostics: risk candidates")

	if topN > len(cand) {
		topN = len(cand)
	}
	for _, d := range cand[:topN] {
		log.Info().
			Int("idx", d.idx).
			Float64("length_m", d.lengthM).
			Float64("boundary_dist_m", d.minBoundaryDistM).
			Int("deg_u", d.degU).
			Int("deg_v", d.degV).
			Msg("topology diagnostics: risk candidate")
	}
}
