// Package geom2d is a small planar-geometry kernel: points, line strings,
// rings and polygons, plus the predicates and constructions the skeleton
// pipeline needs (length, densify, convex hull, minimum rotated rectangle,
// area, point-in-polygon, buffer, union, Douglas-Peucker simplify, line/
// polygon clipping, Voronoi ridges, and planarization).
//
// Coordinates are plain float64 pairs; all pipeline-facing node keys are
// rounded to Precision decimals, but geom2d itself never rounds implicitly
// except where noted.
package geom2d

// Precision is the decimal rounding applied to node/vertex keys throughout
// the pipeline (0.001 m). See spec §6 "Coordinate precision" and §9(c).
const Precision = 3

// Eps is the tolerance used for "equal enough" floating point comparisons
// in predicates (intersection, collinearity, zero-length checks).
const Eps = 1e-9
