// Package validator is a read-only QA pass over the finished centerline
// network: it never mutates its input, only logs connectivity and
// boundary-finish risk findings and returns them for a caller that wants
// to act on them (spec §4.12 "Validation is advisory"). Grounded on
// original_source/Service/gis_modules/validator.py's ResultValidator.
package validator

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

// DefaultSnapThresholdM is substituted when the caller has no configured
// snap_threshold (spec §9(a) open question resolution: the source reads
// getattr(config, "snap_threshold", 0.5), so 0.5 is the fallback, not a
// required config field).
const DefaultSnapThresholdM = 0.5

// Execute runs connectivity and boundary-finish checks over the final
// network and returns every finding as a human-readable string (empty if
// none), logging a summary either way. snapThresholdM is the maximum
// allowed distance from a degree-1 endpoint to the input boundary before
// it is flagged as an unfinished terminal.
func Execute(log zerolog.Logger, final []geom2d.LineString, inputBoundary geom2d.MultiPolygon, snapThresholdM float64) []string {
	if len(final) == 0 {
		log.Warn().Msg("validator: final result is empty")
		return nil
	}
	log.Info().Msg("validator: quality assurance pass start")

	g := core.NewGraph()
	for _, ln := range final {
		if len(ln) < 2 {
			continue
		}
		g.AddEdge(ln)
	}

	var errors []string
	checkConnectivity(log, g, &errors)
	checkBoundaryTouch(log, g, inputBoundary, snapThresholdM, &errors)

	if len(errors) > 0 {
		log.Warn().Int("count", len(errors)).Msg("validator: potential risk factors found")
		for _, e := range errors[:minInt(5, len(errors))] {
			log.Warn().Msg("validator: " + e)
		}
	} else {
		log.Info().Msg("validator: all quality checks passed")
	}
	return errors
}

func checkConnectivity(log zerolog.Logger, g *core.Graph, errors *[]string) {
	comps := g.ConnectedComponents()
	log.Info().Int("components", len(comps)).Msg("validator: network component count")
	if len(comps) > 1 {
		*errors = append(*errors, fmt.Sprintf("network is split into %d disconnected fragments", len(comps)))
	}
}

func checkBoundaryTouch(log zerolog.Logger, g *core.Graph, boundary geom2d.MultiPolygon, tolerance float64, errors *[]string) {
	var terminals []*core.Node
	for _, n := range g.Nodes() {
		if g.Degree(n.Key) == 1 {
			terminals = append(terminals, n)
		}
	}
	if len(terminals) == 0 {
		return
	}
	if len(boundary) == 0 {
		log.Warn().Msg("validator: no boundary available, skipping finish check")
		return
	}

	failed := 0
	for _, n := range terminals {
		dist := geom2d.DistanceToBoundaryMulti(n.Point(), boundary)
		if dist > tolerance {
			failed++
			if failed <= 3 {
				*errors = append(*errors, fmt.Sprintf(
					"terminal (%.3f, %.3f) is %.3fm from the boundary (tolerance %.3fm)",
					n.X, n.Y, dist, tolerance))
			}
		}
	}
	if failed == 0 {
		log.Info().Int("terminals", len(terminals)).Msg("validator: all terminals seated on boundary")
	} else {
		log.Warn().Int("terminals", len(terminals)).Int("failed", failed).
			Msg("validator: some terminals did not reach the boundary")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
