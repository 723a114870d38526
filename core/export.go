package core

import "github.com/dkovalov/roadskeleton/geom2d"

// ExportLines returns every edge's geometry as a LineString, in Edges()
// order (deterministic). Grounded on the original implementation's
// export_graph_to_lines step at the end of graph construction/refinement.
func (g *Graph) ExportLines() []geom2d.LineString {
	edges := g.Edges()
	out := make([]geom2d.LineString, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Geometry)
	}
	return out
}
