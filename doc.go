// Package roadskeleton is the root of a pipeline that extracts centerline
// skeletons from road-surface polygons and normalizes the resulting
// network's topology.
//
// The pipeline is organized into stages, one package per concern:
//
//	geom2d/     — planar geometry kernel (buffering, simplification, unions)
//	core/       — thread-safe in-memory graph primitives
//	cluster/    — polygon adjacency grouping
//	policy/     — width-distribution-derived thresholds
//	preprocess/ — polygon merge and stabilization
//	candidates/ — Voronoi and boundary-pair centerline candidates
//	selector/   — candidate scoring and duplicate suppression
//	skelgraph/  — skeleton graph construction
//	pruner/     — ratio/boundary/component/spur pruning passes
//	refine/     — parallel-edge separation and directional smoothing
//	topology/   — network-level cleanup and simplification
//	validator/  — post-normalization quality checks
//	gisio/      — polygon/line geometry I/O
//	config/     — runtime-tunable thresholds
//	pipeline/   — stage orchestration
//
// See cmd/roadskeleton for the CLI entrypoint.
package roadskeleton
