package topology

import (
	"github.com/dkovalov/roadskeleton/core"
	"github.com/dkovalov/roadskeleton/geom2d"
)

func buildMultiGraph(lines []geom2d.LineString) *core.Graph {
	g := core.NewGraph(core.WithMultigraph())
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		g.AddEdge(ln)
	}
	return g
}

func linesOf(g *core.Graph) []geom2d.LineString {
	out := make([]geom2d.LineString, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, e.Geometry)
	}
	return out
}

func deadEndsOf(g *core.Graph) []string {
	var out []string
	for _, n := range g.Nodes() {
		if g.Degree(n.Key) == 1 {
			out = append(out, n.Key)
		}
	}
	return out
}

// traceFromDeadEnd walks from a degree-1 node along unvisited neighbors,
// accumulating edge IDs and length, stopping either when it reaches a
// node of degree>=3 (a junction — traversal includes that last edge) or
// when it reaches another dead end or a node with no unvisited neighbor
// left. Unlike pruner's leaf trace, this never distinguishes a "true
// spur" from a standalone chain between two dead ends — the caller
// decides purely from total length, matching cleaners.py's
// SpurCleaner._trace_spur_path / TerminalForkCleaner._trace_to_junction.
func traceFromDeadEnd(g *core.Graph, start string) (edges []string, totalLen float64, stoppedAt string) {
	visited := map[string]bool{start: true}
	curr := start
	for {
		var next *core.Edge
		for _, e := range g.Neighbors(curr) {
			if other := e.OtherEnd(curr); !visited[other] {
				next = e
				break
			}
		}
		if next == nil {
			return edges, totalLen, curr
		}
		nxt := next.OtherEnd(curr)
		totalLen += next.Length
		edges = append(edges, next.ID)
		if g.Degree(nxt) >= 3 {
			return edges, totalLen, nxt
		}
		curr = nxt
		visited[curr] = true
		if g.Degree(curr) == 1 {
			return edges, totalLen, curr
		}
	}
}

// CleanSpurs removes short dead-end branches, repeated until stable (spec
// §4.11 "SpurCleaner"). Grounded on cleaners.py's SpurCleaner.
func CleanSpurs(lines []geom2d.LineString) []geom2d.LineString {
	if len(lines) == 0 {
		return lines
	}
	g := buildMultiGraph(lines)
	removed := 0
	for {
		deadEnds := deadEndsOf(g)
		if len(deadEnds) == 0 {
			break
		}
		toRemove := map[string]bool{}
		for _, leaf := range deadEnds {
			edges, totalLen, _ := traceFromDeadEnd(g, leaf)
			if totalLen <= spurCleanerMaxSpurLenM {
				for _, eid := range edges {
					toRemove[eid] = true
				}
			}
		}
		if len(toRemove) == 0 {
			break
		}
		for eid := range toRemove {
			_ = g.RemoveEdge(eid)
		}
		g.RemoveIsolatedNodes()
		removed += len(toRemove)
	}
	if removed == 0 {
		return lines
	}
	return linesOf(g)
}

type forkPath struct {
	edges    []string
	totalLen float64
	junction string
}

// CleanTerminalForks removes Y-shaped forks and short hooks that occur
// near the input boundary — a fork (>=2 dead ends tracing to the same
// junction) drops every branch under terminalForkMaxForkLenM; a lone
// dead-end path instead drops only its leading hook portion up to
// terminalForkMaxHookLenM (spec §4.11 "TerminalForkCleaner"). Grounded on
// cleaners.py's TerminalForkCleaner.
func CleanTerminalForks(lines []geom2d.LineString, boundary geom2d.MultiPolygon) []geom2d.LineString {
	if len(lines) == 0 || len(boundary) == 0 {
		return lines
	}
	g := buildMultiGraph(lines)
	removed := 0
	for {
		deadEnds := deadEndsOf(g)
		if len(deadEnds) == 0 {
			break
		}

		junctionMap := map[string][]forkPath{}
		for _, leaf := range deadEnds {
			n, err := g.GetNode(leaf)
			if err != nil {
				continue
			}
			if geom2d.DistanceToBoundaryMulti(n.Point(), boundary) > terminalForkBoundaryThresholdM {
				continue
			}
			edges, totalLen, junction := traceFromDeadEnd(g, leaf)
			junctionMap[junction] = append(junctionMap[junction], forkPath{edges, totalLen, junction})
		}

		toRemove := map[string]bool{}
		for _, paths := range junctionMap {
			if len(paths) >= 2 {
				for _, p := range paths {
					if p.totalLen <= terminalForkMaxForkLenM {
						for _, eid := range p.edges {
							toRemove[eid] = true
						}
					}
				}
				continue
			}
			p := paths[0]
			var accumulated float64
			var hookEdges []string
			for _, eid := range p.edges {
				e, err := g.GetEdge(eid)
				if err != nil {
					continue
				}
				if len(hookEdges) == 0 && e.Length > terminalForkMaxHookLenM {
					break
				}
				if accumulated+e.Length <= terminalForkMaxHookLenM {
					hookEdges = append(hookEdges, eid)
					accumulated += e.Length
				} else {
					break
				}
			}
			for _, eid := range hookEdges {
				toRemove[eid] = true
			}
		}

		if len(toRemove) == 0 {
			break
		}
		for eid := range toRemove {
			_ = g.RemoveEdge(eid)
		}
		g.RemoveIsolatedNodes()
		removed += len(toRemove)
	}
	if removed == 0 {
		return lines
	}
	return linesOf(g)
}
