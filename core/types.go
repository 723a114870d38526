// Package core defines the central PlanarGraph, Node, and Edge types used
// throughout skeleton construction, pruning, and topology normalization,
// and provides thread-safe primitives for building, querying, and mutating
// graphs.
//
// Node keys are derived from coordinates rounded to geom2d.Precision
// decimals (spec §3, §6): two candidate endpoints at the same rounded
// location collapse onto one Node. Edge identity is a separate, ever-
// increasing ID so parallel edges between the same two nodes are
// representable — the graph is a multigraph during topology normalization
// and a de-facto simple graph during skeleton pruning, per spec §3, with
// no separate type for either: algorithms that require simple-graph
// semantics enforce it themselves.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for
// nodes, muEdgeAdj for edges and adjacency), mirroring the teacher
// library's dual-lock Graph so a read-only observer (e.g. a debug
// exporter) can inspect a graph concurrently with the synchronous
// pipeline that owns it.
//
// Errors:
//
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrSelfLoop      - edge endpoints round to the same node key.
//	ErrDegenerateGeo - edge geometry has fewer than 2 points.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dkovalov/roadskeleton/geom2d"
)

// Sentinel errors for core graph operations.
var (
	ErrNodeNotFound  = errors.New("core: node not found")
	ErrEdgeNotFound  = errors.New("core: edge not found")
	ErrSelfLoop      = errors.New("core: self-loop rejected (endpoints coincide)")
	ErrDegenerateGeo = errors.New("core: edge geometry has fewer than 2 points")
)

// Node is a graph vertex at a rounded planar coordinate, carrying the
// distance from that point to the reference polygon's boundary.
type Node struct {
	Key    string
	X, Y   float64
	Radius float64
}

// Point returns the node's coordinate as a geom2d.Point.
func (n *Node) Point() geom2d.Point { return geom2d.Point{X: n.X, Y: n.Y} }

// Edge is a graph edge carrying its polyline geometry (endpoints equal to
// the two node coordinates) and its cached 2D length.
type Edge struct {
	ID       string
	From     string // node key
	To       string // node key
	Geometry geom2d.LineString
	Length   float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithMultigraph marks a graph as expecting parallel edges between the
// same node pair (topology normalization). Purely descriptive: AddEdge
// never rejects parallel edges on its own; simple-graph callers that care
// check explicitly before adding (see HasEdgeBetween).
func WithMultigraph() GraphOption {
	return func(g *Graph) { g.multigraph = true }
}

// Graph is the planar multigraph used by skeleton construction, pruning,
// and topology normalization.
//
// muNode protects nodes; muEdgeAdj protects edges and adjacency.
// nextEdgeID is a counter for unique Edge.ID generation.
type Graph struct {
	muNode    sync.RWMutex
	muEdgeAdj sync.RWMutex

	multigraph bool

	nextEdgeID uint64
	nodes      map[string]*Node
	edges      map[string]*Edge

	// adjacency[nodeKey][edgeID] = struct{}{}
	adjacency map[string]map[string]struct{}
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NodeKey renders a rounded coordinate pair as the canonical node key.
func NodeKey(p geom2d.Point) string {
	r := p.Round(geom2d.Precision)
	return fmt.Sprintf("%.3f,%.3f", r.X, r.Y)
}
