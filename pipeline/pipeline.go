// Package pipeline wires the road-polygon-to-centerline stages together
// end to end: load, merge/stabilize, generate/select candidates, build and
// prune the skeleton graph, refine it, normalize its topology, validate,
// and save (spec §3's top-level flow). Grounded on
// original_source/Service/gis_service.py's GISService.run_pipeline and
// Service/gis_modules/skeleton/processor.py's SkeletonProcessor.execute.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/candidates"
	"github.com/dkovalov/roadskeleton/config"
	"github.com/dkovalov/roadskeleton/geom2d"
	"github.com/dkovalov/roadskeleton/gisio"
	"github.com/dkovalov/roadskeleton/policy"
	"github.com/dkovalov/roadskeleton/preprocess"
	"github.com/dkovalov/roadskeleton/pruner"
	"github.com/dkovalov/roadskeleton/refine"
	"github.com/dkovalov/roadskeleton/selector"
	"github.com/dkovalov/roadskeleton/skelgraph"
	"github.com/dkovalov/roadskeleton/topology"
	"github.com/dkovalov/roadskeleton/validator"
)

// logStage returns a function that, deferred with &err in scope, logs the
// named stage's duration and outcome on return — the replacement for the
// source's stacked @log_execution_time/@safe_run decorators (see
// DESIGN.md's cross-cutting section).
func logStage(log zerolog.Logger, name string) func(err *error) {
	start := time.Now()
	return func(err *error) {
		ev := log.Info()
		if err != nil && *err != nil {
			ev = log.Error().Err(*err)
		}
		ev.Str("stage", name).Dur("elapsed", time.Since(start)).Msg("pipeline: stage complete")
	}
}

// Run executes the full pipeline: inputPath is read via gisio.Loader,
// outputPath is written via gisio.Writer, and the final written path is
// returned on success. ctx is observed only between top-level stages
// (load, skeleton extraction, topology normalization, validation, save);
// no individual stage is itself cancellable mid-computation (spec §5).
func Run(ctx context.Context, log zerolog.Logger, cfg config.GISConfig, inputPath, outputPath string) (path string, err error) {
	defer logStage(log, "run_pipeline")(&err)

	loader := gisio.Loader{Log: log}
	boundary, crs, err := loader.Load(inputPath)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	skeletonLines := extractSkeleton(log, boundary)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	topoCfg := topology.Config{
		IntersectionMergeThresholdM:  cfg.TopologyIntersectionMergeThresholdM,
		IntersectionParallelAngleDeg: cfg.TopologyIntersectionParallelAngleDeg,
		SimplifyMainToleranceM:       cfg.TopologySimplifyMainToleranceM,
		SimplifyJunctionToleranceM:   cfg.TopologySimplifyJunctionToleranceM,
		JunctionMinDegree:            cfg.TopologyJunctionMinDegree,
		DebugExportIntermediate:      cfg.DebugExportIntermediate,
	}
	result := topology.Process(log, skeletonLines, boundary, topoCfg)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	for _, finding := range validator.Execute(log, result.Final, boundary, cfg.SnapThreshold) {
		log.Warn().Str("finding", finding).Msg("pipeline: validation finding")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	writer := gisio.Writer{Log: log}
	if err := writer.Write(outputPath, result.Final, crs); err != nil {
		return "", err
	}
	return outputPath, nil
}

// extractSkeleton runs the candidate-generation/graph/prune/refine stages
// (spec §4.1-§4.10) and returns the finalized centerline set, mirroring
// SkeletonProcessor.execute.
func extractSkeleton(log zerolog.Logger, boundary geom2d.MultiPolygon) []geom2d.LineString {
	if len(boundary) == 0 {
		log.Warn().Msg("skeleton: empty input, skipping")
		return nil
	}

	p := policy.FromWidthDistribution(widthSamples(boundary))
	log.Info().Str("regime", string(p.Regime)).Float64("median_width_m", p.MedianWidthM).Msg("skeleton: policy selected")

	merged := preprocess.MergePolygons(boundary, p)
	if len(merged) == 0 {
		log.Warn().Msg("skeleton: merge result is empty")
		return nil
	}

	stable := preprocess.Stabilize(merged, p)
	if len(stable) == 0 {
		log.Warn().Msg("skeleton: stabilized result is empty")
		return nil
	}

	var rawVoronoi, rawPair []candidates.Candidate
	for _, part := range stable {
		rawVoronoi = append(rawVoronoi, candidates.VoronoiCandidates(part, stable, p)...)
		rawPair = append(rawPair, candidates.BoundaryPairCandidates(part, stable, p)...)
	}
	selectedVoronoi := selector.Select(log, rawVoronoi, stable, p, "voronoi")
	selectedPair := selector.Select(log, rawPair, stable, p, "boundary_pair")

	rawLines := make([]geom2d.LineString, 0, len(selectedVoronoi)+len(selectedPair))
	for _, c := range selectedVoronoi {
		rawLines = append(rawLines, c.Geometry)
	}
	for _, c := range selectedPair {
		rawLines = append(rawLines, c.Geometry)
	}
	log.Info().
		Int("voronoi_selected", len(selectedVoronoi)).
		Int("boundary_pair_selected", len(selectedPair)).
		Msg("skeleton: candidates selected")
	if len(rawLines) == 0 {
		return nil
	}

	g := skelgraph.Build(rawLines, stable)
	log.Info().Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("skeleton: graph built")

	pruner.RatioPrune(g, p)
	pruner.BoundaryNearPrune(g, p)
	pruner.ComponentPrune(g, p)
	pruner.SpurPrune(g, p)

	skelgraph.MergeDegree2Nodes(g)
	refine.SeparateParallelAndReconnect(g, stable, p)
	g = refine.SmoothByDirectionField(g, p)
	log.Info().Int("nodes", g.NodeCount()).Int("edges", g.EdgeCount()).Msg("skeleton: graph refined")

	final := make([]geom2d.LineString, 0, g.EdgeCount())
	for _, ln := range g.ExportLines() {
		if geom2d.Length(ln) >= p.PostprocessMinLenM {
			final = append(final, ln)
		}
	}
	return final
}

// widthSamples computes each part's minimum-rotated-rectangle short edge,
// the proxy for observed road width (spec §4.1).
func widthSamples(mp geom2d.MultiPolygon) []float64 {
	widths := make([]float64, 0, len(mp))
	for _, part := range mp {
		rect := geom2d.MinRotatedRectangle(part)
		widths = append(widths, rect.ShortEdge())
	}
	return widths
}
