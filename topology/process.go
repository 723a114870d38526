package topology

import (
	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/geom2d"
)

// Result holds the three checkpoints the source pipeline returns:
// Stage1 after planarization, Stage2 after false-node merging, and Final
// after length-adaptive simplification (spec §4.11, processor.py's
// (stage1_gdf, stage2_gdf, final_gdf) triple).
type Result struct {
	Stage1 []geom2d.LineString
	Stage2 []geom2d.LineString
	Final  []geom2d.LineString
}

// Process runs the full topology normalization pipeline over a pruned and
// smoothed skeleton against its source road boundary, in the fixed order
// spec §4.11 names: snap, planarize, merge intersections, clean terminal
// forks, clean spurs, smooth intersections, merge false nodes, simplify,
// then a non-blocking diagnostics report. An empty input short-circuits
// to an empty Result, logging a warning rather than failing (spec §4.12).
// Grounded on topology/processor.py's TopologyProcessor._run_with_stages.
func Process(log zerolog.Logger, skeletonLines []geom2d.LineString, inputBoundary geom2d.MultiPolygon, cfg Config) Result {
	if len(skeletonLines) == 0 {
		log.Warn().Msg("topology pipeline: empty input skeleton, skipping")
		return Result{}
	}
	log.Info().Msg("topology pipeline: start")

	snapped := SnapCoordinates(skeletonLines)
	rawLines := make([]geom2d.LineString, 0, len(snapped))
	for _, ln := range snapped {
		if len(ln) >= 2 {
			rawLines = append(rawLines, ln)
		}
	}
	if len(rawLines) == 0 {
		log.Warn().Msg("topology pipeline: no usable lines after snapping")
		return Result{}
	}

	stage1 := geom2d.Planarize(rawLines)
	merged := MergeIntersections(stage1, cfg.IntersectionMergeThresholdM, cfg.IntersectionParallelAngleDeg)
	forkCleaned := CleanTerminalForks(merged, inputBoundary)
	spurCleaned := CleanSpurs(forkCleaned)
	smoothed := SmoothIntersections(spurCleaned, intersectionSmootherClearanceRadius)
	stage2 := MergeFalseNodes(smoothed)
	final := SimplifyNetwork(stage2, cfg.SimplifyMainToleranceM, cfg.SimplifyJunctionToleranceM, cfg.JunctionMinDegree)

	reportDiagnosticsSafely(log, final, inputBoundary)

	log.Info().Msg("topology pipeline: done")
	return Result{Stage1: stage1, Stage2: stage2, Final: final}
}

// reportDiagnosticsSafely recovers from any panic inside the diagnostics
// pass so a reporting bug never takes down a successfully normalized
// network (spec §4.12, mirroring processor.py's try/except around
// diagnostics.report).
func reportDiagnosticsSafely(log zerolog.Logger, final []geom2d.LineString, boundary geom2d.MultiPolygon) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("topology diagnostics: recovered from panic")
		}
	}()
	Report(log, final, boundary, DefaultDiagnosticsPolicy())
}
